// Package models provides the shared data types of flutter-scaffold.
//
// # Architectures
//
// A project is scaffolded in one of two architectural styles:
//   - Clean: core / data / domain / presentation layering
//   - MVVM: models, views and view models
//
// Use [Architecture] and its constants:
//
//	arch, err := models.ParseArchitecture("mvvm")
//	fmt.Println(arch.Label()) // "MVVM"
//
// # Editors
//
// [EditorChoice] records where the project is opened once scaffolding
// finishes. Known editors carry a fixed launch command; [EditorCustom]
// carries a user supplied one and [EditorNone] opens nothing.
//
// # Languages
//
// Prompt text is available in the languages returned by
// [SupportedLanguages]:
//
//	langs := models.SupportedLanguages() // ["en", "tr"]
//	name := models.GetLanguageName("tr")  // "Turkish (Türkçe)"
package models
