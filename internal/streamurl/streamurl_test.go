package streamurl

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"twitch embed with trailing params",
			"http://www.twitch.tv/widgets/live_embed_player.swf?channel=dendi&auto_play=true",
			"http://twitch.tv/dendi",
		},
		{
			"twitch embed channel at end",
			"http://www.twitch.tv/widgets/live_embed_player.swf?channel=misc",
			"http://twitch.tv/misc",
		},
		{
			"twitch channel param without value stays as-is",
			"http://www.twitch.tv/player?channel=",
			"http://www.twitch.tv/player?channel=",
		},
		{
			"query stripped",
			"https://player.example.com/watch?autoplay=1",
			"https://player.example.com/watch",
		},
		{
			"embed fragment removed",
			"https://example.com/#!/embed/foo",
			"https://example.com/foo",
		},
		{
			"embed host rewritten",
			"https://embed.example.com/stream",
			"https://example.com/stream",
		},
		{
			"query cut drops fragment before embed rewrite",
			"https://embed.example.com/embed?id=5#!/embed/bar",
			"https://example.com/embed",
		},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// 规范化结果再次规范化必须保持不变
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"http://www.twitch.tv/widgets/live_embed_player.swf?channel=dendi&auto_play=true",
		"https://player.example.com/watch?autoplay=1",
		"https://embed.example.com/embed?id=5#!/embed/bar",
		"https://example.com/#!/embed/foo",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
