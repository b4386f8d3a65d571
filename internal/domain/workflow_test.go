package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cmin/internal/adapter"
	controllermocks "github.com/mouse-blink/cmin/internal/controller/mocks"
	"github.com/mouse-blink/cmin/internal/domain"
	domainmocks "github.com/mouse-blink/cmin/internal/domain/mocks"
	m "github.com/mouse-blink/cmin/internal/model"
)

type workflowFixture struct {
	ui       *controllermocks.MockUI
	checker  *domainmocks.MockChecker
	workflow domain.Workflow
	dir      string
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	ui := controllermocks.NewMockUI(t)
	checker := domainmocks.NewMockChecker(t)

	return workflowFixture{
		ui:       ui,
		checker:  checker,
		workflow: domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui, newMinifier(), checker),
		dir:      t.TempDir(),
	}
}

func (f workflowFixture) write(t *testing.T, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestWorkflow_Minify_NoInput(t *testing.T) {
	f := newWorkflowFixture(t)

	err := f.workflow.Minify(context.Background(), domain.MinifyArgs{})
	require.ErrorIs(t, err, domain.ErrNoInput)
}

func TestWorkflow_Minify_Stdout(t *testing.T) {
	f := newWorkflowFixture(t)
	path := f.write(t, "main.c", sample)

	f.ui.On("WriteCode", []byte("int main(void){int a=0;return a;}")).Return(nil)

	err := f.workflow.Minify(context.Background(), domain.MinifyArgs{
		Paths:   []m.Path{path},
		Options: domain.DefaultOptions(),
	})
	require.NoError(t, err)
}

func TestWorkflow_Minify_StdoutError(t *testing.T) {
	f := newWorkflowFixture(t)
	path := f.write(t, "main.c", sample)

	f.ui.On("WriteCode", mock.Anything).Return(errors.New("broken pipe"))

	err := f.workflow.Minify(context.Background(), domain.MinifyArgs{
		Paths:   []m.Path{path},
		Options: domain.DefaultOptions(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestWorkflow_Minify_OutputFileWithStats(t *testing.T) {
	f := newWorkflowFixture(t)
	path := f.write(t, "main.c", sample)
	output := m.Path(filepath.Join(f.dir, "out", "small.c"))

	f.ui.On("DisplayWritten", mock.MatchedBy(func(fr m.FileResult) bool {
		return fr.Source.Origin == path && fr.Output == output
	})).Return()
	f.ui.On("DisplayStats", mock.MatchedBy(func(results []m.FileResult) bool {
		return len(results) == 1 && results[0].Result.Stats.CommentsRemoved == 1
	})).Return(nil)

	err := f.workflow.Minify(context.Background(), domain.MinifyArgs{
		Paths:     []m.Path{path},
		Output:    output,
		Options:   domain.DefaultOptions(),
		ShowStats: true,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(string(output))
	require.NoError(t, err)
	assert.Equal(t, "int main(void){int a=0;return a;}\n", string(content))
}

func TestWorkflow_Minify_OutputDirectory(t *testing.T) {
	f := newWorkflowFixture(t)
	path := f.write(t, "main.c", sample)
	outDir := filepath.Join(f.dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	want := m.Path(filepath.Join(outDir, "main_min.c"))
	f.ui.On("DisplayWritten", mock.MatchedBy(func(fr m.FileResult) bool {
		return fr.Output == want
	})).Return()

	err := f.workflow.Minify(context.Background(), domain.MinifyArgs{
		Paths:   []m.Path{path},
		Output:  m.Path(outDir),
		Options: domain.DefaultOptions(),
	})
	require.NoError(t, err)

	_, err = os.Stat(string(want))
	require.NoError(t, err)
}

func TestWorkflow_Minify_Many(t *testing.T) {
	f := newWorkflowFixture(t)
	first := f.write(t, "first.c", "int main(void) { int x = 1; return x; }\n")
	second := f.write(t, "second.c", "// only a comment\nint y;\n")
	outDir := m.Path(filepath.Join(f.dir, "min"))

	var written []m.Path
	f.ui.On("DisplayWritten", mock.Anything).Run(func(args mock.Arguments) {
		written = append(written, args.Get(0).(m.FileResult).Source.Origin)
	}).Return()
	f.ui.On("DisplayStats", mock.MatchedBy(func(results []m.FileResult) bool {
		return len(results) == 2
	})).Return(nil)

	err := f.workflow.Minify(context.Background(), domain.MinifyArgs{
		Paths:     []m.Path{first, second},
		Output:    outDir,
		Options:   domain.DefaultOptions(),
		Threads:   2,
		ShowStats: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{first, second}, written, "results are reported in input order")

	got, err := os.ReadFile(filepath.Join(string(outDir), "first_min.c"))
	require.NoError(t, err)
	assert.Equal(t, "int main(void){int a=1;return a;}\n", string(got))

	got, err = os.ReadFile(filepath.Join(string(outDir), "second_min.c"))
	require.NoError(t, err)
	assert.Equal(t, "int y;\n", string(got))
}

func TestWorkflow_Minify_ManyNeedsOutput(t *testing.T) {
	f := newWorkflowFixture(t)

	err := f.workflow.Minify(context.Background(), domain.MinifyArgs{
		Paths: []m.Path{"a.c", "b.c"},
	})
	require.ErrorIs(t, err, domain.ErrOutputRequired)
}

func TestWorkflow_Minify_MissingFile(t *testing.T) {
	f := newWorkflowFixture(t)

	err := f.workflow.Minify(context.Background(), domain.MinifyArgs{
		Paths:   []m.Path{m.Path(filepath.Join(f.dir, "missing.c"))},
		Options: domain.DefaultOptions(),
	})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWorkflow_Minify_PipelineError(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	minifier := domainmocks.NewMockMinifier(t)
	workflow := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), ui, minifier, domainmocks.NewMockChecker(t))

	path := filepath.Join(t.TempDir(), "deep.c")
	require.NoError(t, os.WriteFile(path, []byte("int x;"), 0o600))

	minifier.On("Minify", mock.Anything, []byte("int x;"), mock.Anything).Return(m.Result{}, domain.ErrTooDeep)

	err := workflow.Minify(context.Background(), domain.MinifyArgs{Paths: []m.Path{m.Path(path)}})
	require.ErrorIs(t, err, domain.ErrTooDeep)
	assert.Contains(t, err.Error(), "deep.c")
}

func TestWorkflow_Check(t *testing.T) {
	f := newWorkflowFixture(t)
	pass := f.write(t, "a.c", "int main(void) { return 0; }\n")
	fail := f.write(t, "b.c", "int main(void) { return 1; }\n")
	f.write(t, "b_min.c", "int main(void){return 1;}\n")

	f.checker.On("CheckFixture", mock.Anything, mock.MatchedBy(func(s m.Source) bool { return s.Origin == pass }), mock.Anything).
		Return(m.CheckReport{Fixture: pass, Status: m.CheckPassed}, nil)
	f.checker.On("CheckFixture", mock.Anything, mock.MatchedBy(func(s m.Source) bool { return s.Origin == fail }), mock.Anything).
		Return(m.CheckReport{Fixture: fail, Status: m.CheckFailed, OriginalExit: 1}, nil)
	f.ui.On("DisplayCheckReports", []m.CheckReport{
		{Fixture: pass, Status: m.CheckPassed},
		{Fixture: fail, Status: m.CheckFailed, OriginalExit: 1},
	}).Return(nil)

	err := f.workflow.Check(context.Background(), domain.CheckArgs{
		Paths:   []m.Path{m.Path(f.dir)},
		Options: domain.DefaultOptions(),
		Threads: 2,
	})
	require.ErrorIs(t, err, domain.ErrCheckFailed)
}

func TestWorkflow_Check_AllPassed(t *testing.T) {
	f := newWorkflowFixture(t)
	path := f.write(t, "a.c", "int main(void) { return 0; }\n")

	f.checker.On("CheckFixture", mock.Anything, mock.Anything, domain.DefaultOptions()).
		Return(m.CheckReport{Fixture: path, Status: m.CheckSkipped}, nil)
	f.ui.On("DisplayCheckReports", mock.Anything).Return(nil)

	err := f.workflow.Check(context.Background(), domain.CheckArgs{
		Paths:   []m.Path{m.Path(f.dir)},
		Options: domain.DefaultOptions(),
	})
	require.NoError(t, err)
}

func TestWorkflow_Check_CheckerError(t *testing.T) {
	f := newWorkflowFixture(t)
	f.write(t, "a.c", "int main(void) { return 0; }\n")

	f.checker.On("CheckFixture", mock.Anything, mock.Anything, mock.Anything).
		Return(m.CheckReport{}, errors.New("no space left"))

	err := f.workflow.Check(context.Background(), domain.CheckArgs{Paths: []m.Path{m.Path(f.dir)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space left")
	f.ui.AssertNotCalled(t, "DisplayCheckReports", mock.Anything)
}

func TestWorkflow_Check_MissingDir(t *testing.T) {
	f := newWorkflowFixture(t)

	err := f.workflow.Check(context.Background(), domain.CheckArgs{
		Paths: []m.Path{m.Path(filepath.Join(f.dir, "nope"))},
	})
	require.Error(t, err)
}
