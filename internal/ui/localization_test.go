package ui

import (
	"testing"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != LangEnglish {
		t.Errorf("Expected English by default, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyStart); got != "Start conversion" {
		t.Errorf("Unexpected English text: %s", got)
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Unknown key should return itself, got %s", got)
	}

	l.SetLanguage("de")
	if l.GetCurrentLanguage() != LangEnglish {
		t.Errorf("Unsupported language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_SwitchLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage(LangFrench)
	if got := l.GetText(KeyStop); got != "Arrêter" {
		t.Errorf("Expected French text, got %s", got)
	}

	l.SetLanguage(LangRussian)
	if got := l.GetText(KeyStop); got != "Стоп" {
		t.Errorf("Expected Russian text, got %s", got)
	}
}

func TestLocalization_SystemResolves(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage(LangSystem)

	if _, ok := l.GetAvailableLanguages()[l.GetCurrentLanguage()]; !ok {
		t.Errorf("System language should resolve to a supported one, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("No texts for %s", code)
			continue
		}
		for key := range l.texts[LangEnglish] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}
