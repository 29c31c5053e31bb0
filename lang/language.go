package lang

import (
	"fmt"
	"sync"
)

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

type TabsStrings struct {
	Books    string
	Settings string
}

type SettingsStrings struct {
	LanguageLabel      string
	LanguageDetail     string
	LinesLabel         string
	LinesDetail        string
	CharsLabel         string
	CharsDetail        string
	OpacityLabel       string
	OpacityDetail      string
	PagingLabel        string
	PagingDetail       string
	PagingArrows       string
	PagingAD           string
	LanguageNames      map[Locale]string
	SaveSettingsFailed string
}

type LibraryStrings struct {
	Empty          string
	OffsetTemplate string
	Unread         string
	FilterPrompt   string
	Refreshed      string
	LoadFailed     string
	BadGeometry    string
}

type ReaderStrings struct {
	EndOfBook      string
	StatusTemplate string
	Hidden         string
}

type CommonStrings struct {
	UnknownState string
	Help         string
}

type Strings struct {
	Tabs     TabsStrings
	Settings SettingsStrings
	Library  LibraryStrings
	Reader   ReaderStrings
	Common   CommonStrings
}

var (
	mu sync.RWMutex

	translations = map[Locale]*Strings{
		LocaleChinese: {
			Tabs: TabsStrings{
				Books:    "书架",
				Settings: "设置",
			},
			Settings: SettingsStrings{
				LanguageLabel:  "语言",
				LanguageDetail: "使用左右键切换语言",
				LinesLabel:     "显示行数",
				LinesDetail:    "每页显示的行数",
				CharsLabel:     "每行字数",
				CharsDetail:    "每行显示的字符数",
				OpacityLabel:   "图层透明度",
				OpacityDetail:  "背景色的不透明程度",
				PagingLabel:    "翻页快捷键",
				PagingDetail:   "使用左右键切换翻页方式",
				PagingArrows:   "← 和 →",
				PagingAD:       "A 和 D",
				LanguageNames: map[Locale]string{
					LocaleChinese: "中文",
					LocaleEnglish: "英文",
				},
				SaveSettingsFailed: "无法保存设置: %v",
			},
			Library: LibraryStrings{
				Empty:          "books文件夹为空",
				OffsetTemplate: "已读至第 %d 字",
				Unread:         "未读",
				FilterPrompt:   "搜索：",
				Refreshed:      "书架已更新",
				LoadFailed:     "无法打开: %v",
				BadGeometry:    "页面尺寸无效: %v",
			},
			Reader: ReaderStrings{
				EndOfBook:      "(已到末尾)",
				StatusTemplate: "%.1f%%  %d/%d",
				Hidden:         "",
			},
			Common: CommonStrings{
				UnknownState: "未知状态",
				Help:         "enter 开始阅读 · tab 切换 · ctrl+c 退出",
			},
		},
		LocaleEnglish: {
			Tabs: TabsStrings{
				Books:    "Books",
				Settings: "Settings",
			},
			Settings: SettingsStrings{
				LanguageLabel:  "Language",
				LanguageDetail: "Use left/right to switch language",
				LinesLabel:     "Lines per page",
				LinesDetail:    "Rows shown on each page",
				CharsLabel:     "Chars per line",
				CharsDetail:    "Characters shown on each row",
				OpacityLabel:   "Opacity",
				OpacityDetail:  "How opaque the background is",
				PagingLabel:    "Paging keys",
				PagingDetail:   "Use left/right to switch paging keys",
				PagingArrows:   "← and →",
				PagingAD:       "A and D",
				LanguageNames: map[Locale]string{
					LocaleChinese: "Chinese",
					LocaleEnglish: "English",
				},
				SaveSettingsFailed: "Failed to save settings: %v",
			},
			Library: LibraryStrings{
				Empty:          "The books folder is empty",
				OffsetTemplate: "Read up to character %d",
				Unread:         "Unread",
				FilterPrompt:   "Search: ",
				Refreshed:      "Library refreshed",
				LoadFailed:     "Cannot open: %v",
				BadGeometry:    "Invalid page size: %v",
			},
			Reader: ReaderStrings{
				EndOfBook:      "(end of book)",
				StatusTemplate: "%.1f%%  %d/%d",
				Hidden:         "",
			},
			Common: CommonStrings{
				UnknownState: "Unknown state",
				Help:         "enter read · tab switch · ctrl+c quit",
			},
		},
	}

	availableLocales = []Locale{
		LocaleChinese,
		LocaleEnglish,
	}

	currentLocale = LocaleChinese
	current       = translations[currentLocale]
)

func AvailableLocales() []Locale {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Locale, len(availableLocales))
	copy(out, availableLocales)
	return out
}

func SetLocale(loc Locale) bool {
	mu.Lock()
	defer mu.Unlock()
	strings, ok := translations[loc]
	if !ok {
		return false
	}
	currentLocale = loc
	current = strings
	return true
}

func CurrentLocale() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return currentLocale
}

func Active() *Strings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func LanguageName(loc Locale) string {
	s := Active()
	if name, ok := s.Settings.LanguageNames[loc]; ok {
		return name
	}
	return string(loc)
}

// NextLocale cycles through the available locales by delta.
func NextLocale(delta int) Locale {
	locales := AvailableLocales()
	cur := CurrentLocale()
	idx := 0
	for i, l := range locales {
		if l == cur {
			idx = i
			break
		}
	}
	n := len(locales)
	return locales[((idx+delta)%n+n)%n]
}

func ReadOffset(offset int) string {
	s := Active()
	return fmt.Sprintf(s.Library.OffsetTemplate, offset)
}

func ReaderStatus(percent float64, page, total int) string {
	s := Active()
	return fmt.Sprintf(s.Reader.StatusTemplate, percent, page, total)
}

func LoadFailed(err error) string {
	s := Active()
	return fmt.Sprintf(s.Library.LoadFailed, err)
}

func BadGeometry(err error) string {
	s := Active()
	return fmt.Sprintf(s.Library.BadGeometry, err)
}

func SaveSettingsFailed(err error) string {
	s := Active()
	return fmt.Sprintf(s.Settings.SaveSettingsFailed, err)
}
