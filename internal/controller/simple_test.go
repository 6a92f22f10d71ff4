package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/checksyntax/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	tests := []struct {
		name         string
		report       m.RunReport
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "empty run",
			report:       m.RunReport{},
			wantContains: []string{bannerTitle, noErrorsLine, "Found 0 functions:"},
			wantMissing:  []string{errorsHeader, "FUNCTION"},
		},
		{
			name: "errors and functions",
			report: m.RunReport{
				Errors: []m.FileError{
					{File: "src/app/main.c", BalanceError: m.BalanceError{Line: 7, Message: "bracket mismatch: unmatched '}'"}},
					{File: "src/app/main.c", BalanceError: m.BalanceError{Message: "unbalanced braces: -1"}},
				},
				Functions: []m.FunctionRecord{
					{File: "src/app/main.c", Name: "app_main"},
					{File: "src/app/hx711.c", Name: "hx711_read"},
				},
			},
			wantContains: []string{
				errorsHeader,
				"✗ src/app/main.c: Line 7: bracket mismatch: unmatched '}'",
				"✗ src/app/main.c: unbalanced braces: -1",
				"Found 2 functions:",
				"main.c", "app_main", "hx711.c", "hx711_read",
			},
			wantMissing: []string{noErrorsLine, "src/app/hx711.c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newBufferedCmd()

			err := NewSimpleUI(cmd).DisplayReport(context.Background(), tt.report)
			require.NoError(t, err)

			got := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}

			for _, missing := range tt.wantMissing {
				assert.NotContains(t, got, missing)
			}
		})
	}
}

func TestSimpleUI_ErrorLinesAreMarked(t *testing.T) {
	cmd, buf := newBufferedCmd()

	report := m.RunReport{
		Errors:    []m.FileError{{File: "a.c", BalanceError: m.BalanceError{Line: 1, Message: "bracket mismatch: unmatched '}'"}}},
		Functions: []m.FunctionRecord{{File: "a.c", Name: "a"}},
	}
	require.NoError(t, NewSimpleUI(cmd).DisplayReport(context.Background(), report))

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "bracket mismatch") {
			assert.Contains(t, line, errorMarker)
			continue
		}

		assert.NotContains(t, line, errorMarker)
	}
}

func TestSimpleUI_DisplayCheckingFile(t *testing.T) {
	cmd, buf := newBufferedCmd()

	NewSimpleUI(cmd).DisplayCheckingFile(context.Background(), m.Path("main/app/app_main.c"))
	assert.Equal(t, "Checking main/app/app_main.c...\n", buf.String())
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, buf := newBufferedCmd()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(cmd)
	ui.DisplayCheckingFile(ctx, m.Path("a.c"))
	require.ErrorIs(t, ui.DisplayReport(ctx, m.RunReport{}), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestNewUI(t *testing.T) {
	cmd, _ := newBufferedCmd()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &StyledUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}

func TestStyledUI_DisplayReport(t *testing.T) {
	cmd, buf := newBufferedCmd()

	report := m.RunReport{Functions: []m.FunctionRecord{{File: "x/y.c", Name: "y"}}}
	require.NoError(t, NewStyledUI(cmd).DisplayReport(context.Background(), report))

	got := buf.String()
	assert.Contains(t, got, bannerTitle)
	assert.Contains(t, got, noErrorsLine)
	assert.Contains(t, got, "Found 1 functions:")
}
