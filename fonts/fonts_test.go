package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()
	for _, name := range []FontName{Small, Body, Bold, Title, Popup} {
		if name.Get() == nil {
			t.Errorf("font %s missing", name)
		}
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("nope").Get()
}

func TestBadFontDataIsSkipped(t *testing.T) {
	LoadFontWithSize("broken", []byte("not a font"), 12)
	if _, ok := fonts["broken"]; ok {
		t.Fatal("unparseable font should not be registered")
	}
}
