package roff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// render converts markdown with the given config, using the extensions
// the library enables for roff output.
func render(t *testing.T, cfg Config, src string) string {
	t.Helper()
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote, extension.DefinitionList),
		goldmark.WithRenderer(NewRenderer(cfg)),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		t.Fatalf("convert: %v", err)
	}
	return buf.String()
}

func TestRenderManBasics(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "# Head\n\nSome *em* and **strong** text.\n")

	for _, frag := range []string{
		".SH\nHead\n",
		".PP\n",
		`\fIem\fP`,
		`\fBstrong\fP`,
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("man output %q missing %q", got, frag)
		}
	}
}

func TestRenderManHeadingLevels(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "# One\n\n## Two\n\n### Three\n")

	if count := strings.Count(got, ".SH\n"); count != 2 {
		t.Errorf("want top levels as .SH twice, got %d in %q", count, got)
	}
	if !strings.Contains(got, ".SS\nThree\n") {
		t.Errorf("man output %q missing .SS for level 3", got)
	}
}

func TestRenderMsHeadingsAndParagraphs(t *testing.T) {
	t.Parallel()

	got := render(t, Config{}, "# One\n\n## Two\n\npara\n")

	for _, frag := range []string{".NH 1\nOne\n", ".NH 2\nTwo\n", ".LP\npara\n"} {
		if !strings.Contains(got, frag) {
			t.Errorf("ms output %q missing %q", got, frag)
		}
	}
}

func TestRenderLists(t *testing.T) {
	t.Parallel()

	t.Run("bullets", func(t *testing.T) {
		t.Parallel()

		got := render(t, Config{Man: true}, "- first\n- second\n")
		if strings.Count(got, `.IP \(bu 2`) != 2 {
			t.Errorf("bullet list output %q", got)
		}
	})

	t.Run("ordered with start", func(t *testing.T) {
		t.Parallel()

		got := render(t, Config{Man: true}, "3. third\n4. fourth\n")
		for _, frag := range []string{".IP 3. 4\nthird\n", ".IP 4. 4\nfourth\n"} {
			if !strings.Contains(got, frag) {
				t.Errorf("ordered list output %q missing %q", got, frag)
			}
		}
	})

	t.Run("nested lists are indented", func(t *testing.T) {
		t.Parallel()

		got := render(t, Config{Man: true}, "- outer\n  - inner\n")
		for _, frag := range []string{".RS\n", ".RE\n"} {
			if !strings.Contains(got, frag) {
				t.Errorf("nested list output %q missing %q", got, frag)
			}
		}
	})
}

func TestRenderCodeBlocks(t *testing.T) {
	t.Parallel()

	src := "```\nx := 1\n.danger\n```\n"

	t.Run("man uses EX/EE", func(t *testing.T) {
		t.Parallel()

		got := render(t, Config{Man: true}, src)
		for _, frag := range []string{".EX\n", "x := 1\n", "\\&.danger\n", ".EE\n"} {
			if !strings.Contains(got, frag) {
				t.Errorf("man code output %q missing %q", got, frag)
			}
		}
	})

	t.Run("ms uses DS/DE", func(t *testing.T) {
		t.Parallel()

		got := render(t, Config{}, src)
		for _, frag := range []string{".DS L\n", ".DE\n"} {
			if !strings.Contains(got, frag) {
				t.Errorf("ms code output %q missing %q", got, frag)
			}
		}
	})
}

func TestRenderTextEscaping(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "a \\\\ backslash\n")

	if !strings.Contains(got, `\e`) {
		t.Errorf("output %q does not escape backslash", got)
	}
}

func TestRenderLinks(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "see [the site](https://example.com) now\n")

	if !strings.Contains(got, `the site \(lahttps://example.com\(ra`) {
		t.Errorf("link output %q", got)
	}
}

func TestRenderCodeSpan(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "run `ls -l` now\n")

	if !strings.Contains(got, `\f(CWls -l\fP`) {
		t.Errorf("code span output %q", got)
	}
}

func TestRenderBlockquote(t *testing.T) {
	t.Parallel()

	t.Run("man", func(t *testing.T) {
		t.Parallel()

		got := render(t, Config{Man: true}, "> quoted\n")
		for _, frag := range []string{".RS\n", "quoted", ".RE\n"} {
			if !strings.Contains(got, frag) {
				t.Errorf("blockquote output %q missing %q", got, frag)
			}
		}
	})

	t.Run("ms", func(t *testing.T) {
		t.Parallel()

		got := render(t, Config{}, "> quoted\n")
		for _, frag := range []string{".QS\n", ".QE\n"} {
			if !strings.Contains(got, frag) {
				t.Errorf("blockquote output %q missing %q", got, frag)
			}
		}
	})
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "| a | b |\n|---|--:|\n| c | d |\n")

	for _, frag := range []string{
		".TS\n",
		"allbox;\n",
		"c c\nl r.\n",
		"a\tb\n",
		"c\td\n",
		".TE\n",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("table output %q missing %q", got, frag)
		}
	}
}

func TestRenderTaskList(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "- [x] done\n- [ ] todo\n")

	for _, frag := range []string{"[x] done", "[ ] todo"} {
		if !strings.Contains(got, frag) {
			t.Errorf("task list output %q missing %q", got, frag)
		}
	}
}

func TestRenderFootnotes(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "body[^1]\n\n[^1]: the note\n")

	for _, frag := range []string{"body[1]", ".SH NOTES\n", ".IP 1. 4\nthe note"} {
		if !strings.Contains(got, frag) {
			t.Errorf("footnote output %q missing %q", got, frag)
		}
	}
}

func TestRenderRawHTMLDropped(t *testing.T) {
	t.Parallel()

	got := render(t, Config{Man: true}, "<div>block</div>\n\ntext with <span>inline</span> html\n")

	for _, frag := range []string{"<div>", "<span>"} {
		if strings.Contains(got, frag) {
			t.Errorf("output %q leaked raw HTML %q", got, frag)
		}
	}
	if !strings.Contains(got, "inline") {
		t.Errorf("output %q lost inline text", got)
	}
}
