package cli

// messages holds the user-facing text of a scaffold run.
type messages struct {
	Starting           string // project name, architecture label
	GeneratorFailed    string // exit code
	DirectoriesCreated string // architecture label
	Done               string
	EditorLaunching    string // command
	EditorLaunchFailed string // command
	EditorPathHint     string
	NextStepsTitle     string
	SummaryTitle       string
	SummaryArch        string
	SummaryDirs        string
	SummaryPath        string
}

var catalog = map[string]messages{
	"en": {
		Starting:           "Preparing %s with %s...",
		GeneratorFailed:    "An error occurred while creating the Flutter project (exit code %d).",
		DirectoriesCreated: "Folders for %s added.",
		Done:               "Done! Folders created.",
		EditorLaunching:    "Starting the editor with '%s'...",
		EditorLaunchFailed: "Warning: '%s' could not be found or started.",
		EditorPathHint:     "Make sure the command is on your PATH.",
		NextStepsTitle:     "To continue from the terminal:",
		SummaryTitle:       "Project ready",
		SummaryArch:        "Architecture",
		SummaryDirs:        "Folders",
		SummaryPath:        "Path",
	},
	"tr": {
		Starting:           "%s projesi %s ile hazırlanıyor...",
		GeneratorFailed:    "Flutter projesi oluşturulurken hata oluştu! (çıkış kodu %d)",
		DirectoriesCreated: "%s mimarisine uygun klasörler eklendi.",
		Done:               "İşlem Başarıyla Tamamlandı! Klasörler oluşturuldu.",
		EditorLaunching:    "'%s' komutu ile editör başlatılıyor...",
		EditorLaunchFailed: "Uyarı: '%s' komutu bulunamadı veya çalıştırılamadı.",
		EditorPathHint:     "Lütfen komutun PATH'e ekli olduğundan emin olun.",
		NextStepsTitle:     "Terminalden girmek için:",
		SummaryTitle:       "Proje hazır",
		SummaryArch:        "Mimari",
		SummaryDirs:        "Klasörler",
		SummaryPath:        "Konum",
	},
}

// messagesFor returns the catalog for locale, falling back to English.
func messagesFor(locale string) messages {
	if m, ok := catalog[locale]; ok {
		return m
	}
	return catalog["en"]
}
