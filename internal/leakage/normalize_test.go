package leakage

import "testing"

func TestNormalize_Preserve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Xin Chào", "xin chao"},
		{"diacritics stripped", "điện thoại của mình", "dien thoai cua minh"},
		{"d with stroke", "Đường", "duong"},
		{"punctuation removed", "a.b,c-d_e(f)", "abcdef"},
		{"whitespace collapsed to single", "  nhiều   khoảng    trắng  ", "nhieu khoang trang"},
		{"tabs and newlines", "mot\thai\nba", "mot hai ba"},
		{"other separators kept", "gia/chiec: bao nhieu?", "gia/chiec: bao nhieu?"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.input, false)
			if got != tt.want {
				t.Errorf("normalize(%q, false) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Collapse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"all whitespace removed", "khong chin mot hai", "khongchinmothai"},
		{"digits rejoined", "09 12. 34-5", "0912345"},
		{"spaced domain", "face book . com", "facebookcom"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.input, true)
			if got != tt.want {
				t.Errorf("normalize(%q, true) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRemoveDiacritics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"chào", "chao"},
		{"số điện thoại", "so dien thoai"},
		{"ĐẸP", "DEP"},
		{"ascii only", "ascii only"},
	}

	for _, tt := range tests {
		got := removeDiacritics(tt.input)
		if got != tt.want {
			t.Errorf("removeDiacritics(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
