package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func run(input string) string {
	color.NoColor = true
	var out bytes.Buffer
	Start(strings.NewReader(input), &out)
	return out.String()
}

func TestSingleLineRule(t *testing.T) {
	out := run("class=User;\n")
	assert.Contains(t, out, "AST:\nclass=User;")
}

func TestRuleSpanningLines(t *testing.T) {
	out := run("class=User {\n  visible: true;\n}\n")

	assert.Equal(t, 2, strings.Count(out, CONTINUATION))
	assert.Contains(t, out, "AST:\n")
	assert.Contains(t, out, "visible: true;")
}

func TestErrorIsReported(t *testing.T) {
	out := run("class=;\nfield;\n")

	assert.Contains(t, out, "error[E0110]: expected selector value but found ';'")
	assert.Contains(t, out, "<repl>:1:7")
	assert.Contains(t, out, "AST:\nfield;")
}

func TestComplete(t *testing.T) {
	assert.True(t, complete("class=User;"))
	assert.True(t, complete("class { a: b; }"))
	assert.False(t, complete("class {"))
	assert.False(t, complete("class { a: b; } field"))
	assert.False(t, complete("class { label: 'multi"))
	assert.False(t, complete("/* open"))
	assert.True(t, complete("// note"))
	assert.True(t, complete("class ^"))
}
