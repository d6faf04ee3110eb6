package layout

import "testing"

func TestHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#000000", Color{0, 0, 0, 255}},
		{"#ffffff", Color{255, 255, 255, 255}},
		{"#f8f8f8", Color{0xf8, 0xf8, 0xf8, 255}},
		{"#1a2B3c", Color{0x1a, 0x2b, 0x3c, 255}},
		{"#abc", Color{0xaa, 0xbb, 0xcc, 255}},
		{"#11223380", Color{0x11, 0x22, 0x33, 0x80}},
		{"336699", Color{0x33, 0x66, 0x99, 255}},
	}
	for _, c := range cases {
		got, err := HexColor(c.in)
		if err != nil {
			t.Fatalf("HexColor(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("HexColor(%q): got %+v want %+v", c.in, got, c.want)
		}
	}
}

func TestHexColorRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#xyzxyz", "#123456789"} {
		if _, err := HexColor(in); err == nil {
			t.Fatalf("HexColor(%q): expected error", in)
		}
	}
}
