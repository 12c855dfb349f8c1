package wizard

// QuestionTranslation holds translated strings for a question.
type QuestionTranslation struct {
	Title       string
	Description string
	Options     []OptionTranslation
}

// OptionTranslation holds translated strings for an option.
type OptionTranslation struct {
	Label string
	Desc  string
}

// UIStrings holds translated UI strings.
type UIStrings struct {
	ErrorRequired string
}

// translations maps language code -> question ID -> translation.
// English lives in DefaultQuestions.
var translations = map[string]map[string]QuestionTranslation{
	"tr": {
		QuestionProjectName: {
			Title:       "Proje ismi nedir?",
			Description: "flutter create komutuna verilir ve proje klasörünün adı olur.",
		},
		QuestionArchitecture: {
			Title:       "Hangi mimariyi kullanmak istersin?",
			Description: "Seçilen mimarinin klasörleri lib/ altında oluşturulur.",
			Options: []OptionTranslation{
				{Label: "Clean Architecture"},
				{Label: "MVVM"},
			},
		},
		QuestionEditor: {
			Title: "Projeyi oluşturduktan sonra nerede açmak istersiniz?",
			Options: []OptionTranslation{
				{Label: "VS Code"},
				{Label: "Cursor"},
				{Label: "Diğer (Komut Gir)"},
				{Label: "Hiçbiri"},
			},
		},
		QuestionEditorCommand: {
			Title:       "Editör komutunu giriniz (örn: nvim, subl, atom):",
			Description: "Editör açmamak için boş bırakın.",
		},
	},
}

var uiStrings = map[string]UIStrings{
	"en": {
		ErrorRequired: "This field is required",
	},
	"tr": {
		ErrorRequired: "Bu alan zorunludur",
	},
}

// GetLocalizedQuestion returns a localized copy of the question.
// If no translation exists for the locale, returns the original question.
func GetLocalizedQuestion(q *Question, locale string) Question {
	if locale == "en" || locale == "" {
		return *q
	}

	langTranslations, ok := translations[locale]
	if !ok {
		return *q
	}

	trans, ok := langTranslations[q.ID]
	if !ok {
		return *q
	}

	localized := *q
	if trans.Title != "" {
		localized.Title = trans.Title
	}
	if trans.Description != "" {
		localized.Description = trans.Description
	}

	if len(trans.Options) > 0 && len(q.Options) == len(trans.Options) {
		localized.Options = make([]Option, len(q.Options))
		for i, opt := range q.Options {
			localized.Options[i] = Option{
				Label: trans.Options[i].Label,
				Value: opt.Value, // Keep original value
				Desc:  trans.Options[i].Desc,
			}
			if localized.Options[i].Label == "" {
				localized.Options[i].Label = opt.Label
			}
			if localized.Options[i].Desc == "" {
				localized.Options[i].Desc = opt.Desc
			}
		}
	}

	return localized
}

// GetUIStrings returns UI strings for the given locale.
// Returns English strings if locale is not found.
func GetUIStrings(locale string) UIStrings {
	if s, ok := uiStrings[locale]; ok {
		return s
	}
	return uiStrings["en"]
}
