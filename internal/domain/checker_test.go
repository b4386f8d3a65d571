package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cmin/internal/adapter"
	adaptermocks "github.com/mouse-blink/cmin/internal/adapter/mocks"
	"github.com/mouse-blink/cmin/internal/domain"
	domainmocks "github.com/mouse-blink/cmin/internal/domain/mocks"
	m "github.com/mouse-blink/cmin/internal/model"
)

var fixture = m.Source{
	Origin:  m.Path("/fixtures/fixture.c"),
	Content: []byte("int main(void) { int code = 3; return code; }\n"),
}

func pathEnds(suffix string) interface{} {
	return mock.MatchedBy(func(p m.Path) bool {
		return strings.HasSuffix(string(p), string(filepath.Separator)+suffix)
	})
}

func TestChecker_Passed(t *testing.T) {
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	checker := domain.NewChecker(adapter.NewLocalSourceFSAdapter(), compiler, newMinifier())

	var scratch string

	compiler.On("Compile", mock.Anything, pathEnds("fixture.c"), pathEnds("fixture")).
		Run(func(args mock.Arguments) {
			source := args.Get(1).(m.Path)
			scratch = filepath.Dir(string(source))

			content, err := os.ReadFile(string(source))
			require.NoError(t, err)
			assert.Equal(t, string(fixture.Content), string(content))
		}).
		Return("", nil)
	compiler.On("Compile", mock.Anything, pathEnds("fixture_min.c"), pathEnds("fixture_min")).
		Run(func(args mock.Arguments) {
			content, err := os.ReadFile(string(args.Get(1).(m.Path)))
			require.NoError(t, err)
			assert.Equal(t, "int main(void){int a=3;return a;}", string(content))
		}).
		Return("", nil)
	compiler.On("Run", mock.Anything, pathEnds("fixture")).Return(3, nil)
	compiler.On("Run", mock.Anything, pathEnds("fixture_min")).Return(3, nil)

	report, err := checker.CheckFixture(context.Background(), fixture, domain.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, m.CheckReport{
		Fixture:      fixture.Origin,
		Status:       m.CheckPassed,
		OriginalExit: 3,
		MinifiedExit: 3,
	}, report)

	require.NotEmpty(t, scratch)
	_, err = os.Stat(scratch)
	assert.True(t, os.IsNotExist(err), "scratch dir should be removed")
}

func TestChecker_OriginalDoesNotCompile(t *testing.T) {
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	checker := domain.NewChecker(adapter.NewLocalSourceFSAdapter(), compiler, newMinifier())

	compiler.On("Compile", mock.Anything, pathEnds("fixture.c"), mock.Anything).
		Return("fixture.c:1: error: nope\n", errors.New("exit status 1"))

	report, err := checker.CheckFixture(context.Background(), fixture, domain.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, m.CheckSkipped, report.Status)
	assert.Contains(t, report.Detail, "error: nope")
}

func TestChecker_MinifiedDoesNotCompile(t *testing.T) {
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	checker := domain.NewChecker(adapter.NewLocalSourceFSAdapter(), compiler, newMinifier())

	compiler.On("Compile", mock.Anything, pathEnds("fixture.c"), mock.Anything).Return("", nil)
	compiler.On("Run", mock.Anything, pathEnds("fixture")).Return(0, nil)
	compiler.On("Compile", mock.Anything, pathEnds("fixture_min.c"), mock.Anything).
		Return("error: 'a' undeclared", errors.New("exit status 1"))

	report, err := checker.CheckFixture(context.Background(), fixture, domain.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, m.CheckFailed, report.Status)
	assert.Contains(t, report.Detail, "minified code does not compile")
	assert.Contains(t, report.Detail, "'a' undeclared")
}

func TestChecker_ExitStatusChanged(t *testing.T) {
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	checker := domain.NewChecker(adapter.NewLocalSourceFSAdapter(), compiler, newMinifier())

	compiler.On("Compile", mock.Anything, mock.Anything, mock.Anything).Return("", nil)
	compiler.On("Run", mock.Anything, pathEnds("fixture")).Return(3, nil)
	compiler.On("Run", mock.Anything, pathEnds("fixture_min")).Return(4, nil)

	report, err := checker.CheckFixture(context.Background(), fixture, domain.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, m.CheckFailed, report.Status)
	assert.Equal(t, 3, report.OriginalExit)
	assert.Equal(t, 4, report.MinifiedExit)
	assert.Equal(t, "exit status changed from 3 to 4", report.Detail)
}

func TestChecker_MinifyError(t *testing.T) {
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	minifier := domainmocks.NewMockMinifier(t)
	checker := domain.NewChecker(adapter.NewLocalSourceFSAdapter(), compiler, minifier)

	minifier.On("Minify", mock.Anything, fixture.Content, mock.Anything).
		Return(m.Result{}, domain.ErrTooDeep)

	report, err := checker.CheckFixture(context.Background(), fixture, domain.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, m.CheckFailed, report.Status)
	assert.Contains(t, report.Detail, "depth")
	compiler.AssertNotCalled(t, "Compile", mock.Anything, mock.Anything, mock.Anything)
}

func TestChecker_RunError(t *testing.T) {
	compiler := adaptermocks.NewMockCompilerAdapter(t)
	checker := domain.NewChecker(adapter.NewLocalSourceFSAdapter(), compiler, newMinifier())

	compiler.On("Compile", mock.Anything, mock.Anything, mock.Anything).Return("", nil)
	compiler.On("Run", mock.Anything, mock.Anything).Return(0, errors.New("exec format error"))

	_, err := checker.CheckFixture(context.Background(), fixture, domain.DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exec format error")
}

// TestChecker_Fixtures compiles every bundled fixture before and after
// minification with the C compiler on PATH.
func TestChecker_Fixtures(t *testing.T) {
	compiler := adapter.NewLocalCompilerAdapter("cc")
	if !compiler.Available() {
		t.Skip("no C compiler on PATH")
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	checker := domain.NewChecker(fsAdapter, compiler, newMinifier())

	sources, err := fsAdapter.Get([]m.Path{"testdata"})
	require.NoError(t, err)
	require.NotEmpty(t, sources)

	for _, source := range sources {
		t.Run(filepath.Base(string(source.Origin)), func(t *testing.T) {
			report, err := checker.CheckFixture(context.Background(), source, domain.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, m.CheckPassed, report.Status, report.Detail)
		})
	}
}
