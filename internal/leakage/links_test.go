package leakage

import "testing"

func TestHasLink(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"http url", "xem tai http://example.com/xe", true},
		{"https url", "https://shopee.vn/item/123", true},
		{"www host", "ghé trang www.example.com nha", true},
		{"bare domain", "len shopee.vn ma xem", true},
		{"bare domain with path", "vao trang ban.co/xe nhe", true},
		{"telegram short link", "gui qua t.me/nguoiban", true},
		{"social domain spelled apart", "vao face book . com tim minh", true},
		{"zalo me link", "ket ban qua zalo.me nhe", true},

		{"version string", "phien ban v2.0 moi nhat", false},
		{"decimal number", "dung luong pin 3.14 kwh", false},
		{"plain sentence", "xe minh con moi lam", false},
		{"dotted price", "gia 5.000.000 dong", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasLink(tt.input)
			if got != tt.want {
				t.Errorf("hasLink(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestSocialNeedles ensures every needle went through the same collapse
// normalization applied to messages, and that nothing short enough to sit
// inside ordinary text slipped into the containment list.
func TestSocialNeedles(t *testing.T) {
	for _, n := range socialNeedles {
		if n != normalize(n, true) {
			t.Errorf("needle %q is not in collapsed normal form", n)
		}
		if len(n) < minNeedleLen {
			t.Errorf("needle %q is shorter than %d", n, minNeedleLen)
		}
	}
}
