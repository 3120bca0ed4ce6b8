package titles

import "testing"

func TestComparisonKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "neural networks", "neuralnetworks"},
		{"punctuation stripped", "Neural Networks!", "neuralnetworks"},
		{"trailing dot", "A Study of Things.", "astudyofthings"},
		{"dashes and digits", "3-D U-Net", "3dunet"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComparisonKey(tt.in); got != tt.want {
				t.Errorf("ComparisonKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestComparisonKeyInsensitive(t *testing.T) {
	if ComparisonKey("Neural Networks!") != ComparisonKey("neural networks") {
		t.Error("expected equal keys for case/punctuation variants")
	}
}

func TestComparisonKeyIdempotent(t *testing.T) {
	key := ComparisonKey("A Complex-Title: With Punctuation?")
	if ComparisonKey(key) != key {
		t.Errorf("ComparisonKey not idempotent: %q -> %q", key, ComparisonKey(key))
	}
}

func TestIsTitlecased(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"two words both capitalized", "Neural Networks", true},
		{"two words one lowercase", "Neural networks", false},
		{"five words two capitalized", "Attention is all You need", false},
		{"four words exactly two capitalized", "Attention Is all you", true},
		{"long title three capitalized", "A Study of deep neural Networks", true},
		{"long title mostly lowercase", "a study of deep neural networks", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTitlecased(tt.title); got != tt.want {
				t.Errorf("IsTitlecased(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestRecapitalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "attention is all you need", "Attention Is All You Need"},
		{"small words stay lowercase", "a study of the art", "A Study of the Art"},
		{"acronyms preserved", "training BERT on TPUs", "Training BERT on TPUs"},
		{"mixed case preserved", "scaling NeRF to city scale", "Scaling NeRF to City Scale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recapitalize(tt.in); got != tt.want {
				t.Errorf("Recapitalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProtect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"full fixture",
			"Test {T}itle in a 3-D U-Net Spatially-Varying Mip-NeRF",
			"{T}est {T}itle in a 3-{D} {U}-{N}et {S}patially-Varying {M}ip-{N}e{R}{F}",
		},
		{"plain word", "Networks", "{N}etworks"},
		{"already protected untouched", "{BERT}", "{BERT}"},
		{"lowercase unchanged", "in the wild", "in the wild"},
		{"embedded acronym", "XLNet", "{X}{L}{N}et"},
		{"hyphen with lowercase tail", "Spatially-Varying", "{S}patially-Varying"},
		{"single letter prefix", "U-Net", "{U}-{N}et"},
		{"digit prefix", "3-D", "3-{D}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Protect(tt.in); got != tt.want {
				t.Errorf("Protect(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProtectIdempotent(t *testing.T) {
	titles := []string{
		"Test {T}itle in a 3-D U-Net Spatially-Varying Mip-NeRF",
		"Neural Networks for Dummies",
		"a lowercase title",
	}
	for _, title := range titles {
		once := Protect(title)
		twice := Protect(once)
		if once != twice {
			t.Errorf("Protect not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}
