package leakage

import "testing"

func TestHasWordedPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"ten spelled digits", "khong chin mot hai ba bon nam sau bay tam", true},
		{"spelled digits in sentence", "so cua minh la khong chin mot hai ba bon nam sau bay tam nhe", true},
		{"spelled with diacritics", "không chín một hai ba bốn năm sáu bảy tám", true},
		{"digits finished with words", "goi 09 mot hai ba bon nam sau 78", true},
		{"mixed digits and words", "so dau 0912 roi den ba bon nam sau", true},
		{"trunk prefixed across filler", "khong chin mot hai ba uh bon nam sau bay tam", true},

		{"scattered number words", "mot hai ba thoi", false},
		{"two number words in sentence", "ban hai chiec, moi chiec nam trieu", false},
		{"year word only", "nam nay xe van chay tot", false},
		{"plain chat", "hom nay troi dep qua", false},
		{"short digit fragments", "gio hen 15 30 duoc khong", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasWordedPhone(tt.input)
			if got != tt.want {
				t.Errorf("hasWordedPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsDigitRun(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"0912", true},
		{"7", true},
		{"", false},
		{"09a", false},
		{"ba", false},
	}

	for _, tt := range tests {
		if got := isDigitRun(tt.input); got != tt.want {
			t.Errorf("isDigitRun(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
