package smarty

import "testing"

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "double quotes",
			input: `<p>"Hello" world</p>`,
			want:  "<p>&#8220;Hello&#8221; world</p>",
		},
		{
			name:  "entity quotes from the renderer",
			input: "<p>He said &quot;hi&quot; once</p>",
			want:  "<p>He said &#8220;hi&#8221; once</p>",
		},
		{
			name:  "single quotes",
			input: "<p>'quoted' and don't</p>",
			want:  "<p>&#8216;quoted&#8217; and don&#8217;t</p>",
		},
		{
			name:  "dashes",
			input: "<p>a -- b --- c</p>",
			want:  "<p>a &#8211; b &#8212; c</p>",
		},
		{
			name:  "ellipsis",
			input: "<p>wait...</p>",
			want:  "<p>wait&#8230;</p>",
		},
		{
			name:  "tag attributes untouched",
			input: `<a href="x--y">link -- text</a>`,
			want:  `<a href="x--y">link &#8211; text</a>`,
		},
		{
			name:  "code content untouched",
			input: `<p>use <code>a--b</code> -- ok</p>`,
			want:  "<p>use <code>a--b</code> &#8211; ok</p>",
		},
		{
			name:  "pre block untouched",
			input: "<pre>\"raw\" -- ...</pre>",
			want:  "<pre>\"raw\" -- ...</pre>",
		},
		{
			name:  "nested verbatim closes correctly",
			input: "<pre><code>x--y</code></pre> a--b",
			want:  "<pre><code>x--y</code></pre> a&#8211;b",
		},
		{
			name:  "comment interior untouched",
			input: `<!-- note -- draft --> "hi"`,
			want:  `<!-- note -- draft --> &#8220;hi&#8221;`,
		},
		{
			name:  "comment containing a greater-than sign",
			input: "<!-- a > b --> c -- d",
			want:  "<!-- a > b --> c &#8211; d",
		},
		{
			name:  "unterminated comment copied verbatim",
			input: `text <!-- "open`,
			want:  `text <!-- "open`,
		},
		{
			name:  "unterminated tag copied verbatim",
			input: "text <broken",
			want:  "text <broken",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := string(HTML([]byte(tt.input))); got != tt.want {
				t.Errorf("HTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "quotes and dashes in text lines",
			input: ".PP\n\"Hello\" -- world...\n",
			want:  ".PP\n\\(lqHello\\(rq \\(en world\\[u2026]\n",
		},
		{
			name:  "control lines pass through",
			input: ".TH \"a--b\" 7\ntext -- here\n",
			want:  ".TH \"a--b\" 7\ntext \\(en here\n",
		},
		{
			name:  "apostrophe control line passes through",
			input: "'br\na...b\n",
			want:  "'br\na\\[u2026]b\n",
		},
		{
			name:  "escape sequences survive",
			input: "\\fBbold\\fP -- x\n",
			want:  "\\fBbold\\fP \\(en x\n",
		},
		{
			name:  "single quotes",
			input: "it's 'fine'\n",
			want:  "it\\(cqs \\(oqfine\\(cq\n",
		},
		{
			name:  "control line without newline",
			input: ".EE",
			want:  ".EE",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := string(Roff([]byte(tt.input))); got != tt.want {
				t.Errorf("Roff(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
