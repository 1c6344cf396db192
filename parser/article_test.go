package parser

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormatArticle_SpecimenArticle(t *testing.T) {
	doc := mustDoc(t, `
		<html><body><article>
		<p>Hello</p>
		<pre class="language-python">print(1)</pre>
		<pre>print(2)</pre>
		<p>Bye</p>
		</article></body></html>`)

	got := FormatArticle(doc)
	want := []string{
		"\nHello\n",
		"\n```python\nprint(1)print(2)\n```\n",
		"\nBye\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatArticle() = %q, want %q", got, want)
	}
}

func TestFormatArticle_HeadingLevelMapping(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"h2 maps to level 3", "<h2>Two</h2>", "\n### Two\n"},
		{"h3 maps to level 4", "<h3>Three</h3>", "\n#### Three\n"},
		{"h4 maps to level 5", "<h4>Four</h4>", "\n##### Four\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, "<html><body><article>"+tt.html+"</article></body></html>")
			got := FormatArticle(doc)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("FormatArticle() = %q, want [%q]", got, tt.want)
			}
		})
	}
}

func TestFormatArticle_ListFragment(t *testing.T) {
	doc := mustDoc(t, `
		<html><body><article>
		<ul><li> alpha </li><li>beta</li></ul>
		<ol><li>one</li><li>two</li></ol>
		</article></body></html>`)

	got := FormatArticle(doc)
	want := []string{
		"\n- alpha\n- beta\n",
		"\n- one\n- two\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatArticle() = %q, want %q", got, want)
	}
}

func TestFormatArticle_CodeRunsFlushOncePerRun(t *testing.T) {
	// Two maximal runs of code elements must yield exactly two fences.
	doc := mustDoc(t, `
		<html><body><article>
		<pre>a</pre>
		<code>b</code>
		<h2>Break</h2>
		<pre>c</pre>
		</article></body></html>`)

	got := FormatArticle(doc)
	want := []string{
		"\n```\nab\n```\n",
		"\n### Break\n",
		"\n```\nc\n```\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatArticle() = %q, want %q", got, want)
	}

	fences := 0
	for _, fragment := range got {
		if strings.HasPrefix(fragment, "\n```") {
			fences++
		}
	}
	if fences != 2 {
		t.Errorf("fence count = %d, want 2", fences)
	}
}

func TestFormatArticle_LanguageFirstMatchWins(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "first element's language tags the merged fence",
			html: `<pre class="language-python">one</pre><pre class="language-java">two</pre>`,
			want: "\n```python\nonetwo\n```\n",
		},
		{
			name: "first language class on one element wins",
			html: `<pre class="language-go language-rust">x</pre>`,
			want: "\n```go\nx\n```\n",
		},
		{
			name: "no language class leaves fence untagged",
			html: `<pre>plain</pre>`,
			want: "\n```\nplain\n```\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, "<html><body><article>"+tt.html+"</article></body></html>")
			got := FormatArticle(doc)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("FormatArticle() = %q, want [%q]", got, tt.want)
			}
		})
	}
}

func TestFormatArticle_DivCodeBlocks(t *testing.T) {
	doc := mustDoc(t, `
		<html><body><article>
		<div class="sidebar">ignored chrome</div>
		<div class="code language-cpp">cout;</div>
		<p>After</p>
		</article></body></html>`)

	got := FormatArticle(doc)
	want := []string{
		"\n```cpp\ncout;\n```\n",
		"\nAfter\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatArticle() = %q, want %q", got, want)
	}
}

func TestFormatArticle_EmptyCodeBlockStillFences(t *testing.T) {
	// A code element that is blank after trimming opens the accumulator and
	// keeps its language; the next non-code element flushes an empty fence.
	doc := mustDoc(t, `
		<html><body><article>
		<pre class="language-python">   </pre>
		<p>Hi</p>
		</article></body></html>`)

	got := FormatArticle(doc)
	want := []string{
		"\n```python\n\n```\n",
		"\nHi\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatArticle() = %q, want %q", got, want)
	}
}

func TestFormatArticle_TrailingCodeFlushedAtEnd(t *testing.T) {
	doc := mustDoc(t, `
		<html><body><article>
		<p>Intro</p>
		<pre>tail()</pre>
		</article></body></html>`)

	got := FormatArticle(doc)
	want := []string{
		"\nIntro\n",
		"\n```\ntail()\n```\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatArticle() = %q, want %q", got, want)
	}
}

func TestFormatArticle_EmptyParagraphSkipped(t *testing.T) {
	doc := mustDoc(t, `
		<html><body><article>
		<p>   </p>
		<p>kept</p>
		</article></body></html>`)

	got := FormatArticle(doc)
	want := []string{"\nkept\n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatArticle() = %q, want %q", got, want)
	}
}

func TestFormatArticle_ContainerClassRegion(t *testing.T) {
	doc := mustDoc(t, `
		<html><body>
		<div class="entry-content"><p>From container</p></div>
		</body></html>`)

	got := FormatArticle(doc)
	want := []string{"\nFrom container\n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormatArticle() = %q, want %q", got, want)
	}
}

func TestFormatArticle_NoMainContent(t *testing.T) {
	doc := mustDoc(t, `
		<html><body><div class="unrelated"><p>stray</p></div></body></html>`)

	if got := FormatArticle(doc); len(got) != 0 {
		t.Errorf("FormatArticle() = %q, want empty sequence", got)
	}
}
