package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/primer/internal/domain"
	"github.com/aalvaropc/primer/internal/infra/config"
	"github.com/aalvaropc/primer/internal/usecase"
)

func clearPrimerEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvFetchURL, config.EnvFetchTimeout, config.EnvDirectoryData} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// runCLI executes the root command against an isolated workspace.
func runCLI(t *testing.T, ws string, args ...string) (string, error) {
	t.Helper()
	clearPrimerEnv(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--workspace", ws}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const wantDirectory = `All Employees:
ID: 101, Name: Alice Smith, Department: Engineering, Service Years: 5
ID: 102, Name: Bob Johnson, Department: Marketing, Service Years: 2
ID: 103, Name: Charlie Williams, Department: Engineering, Service Years: 8
ID: 104, Name: Diana Brown, Department: HR, Service Years: 3
ID: 105, Name: Edward Jones, Department: Engineering, Service Years: 1

--- Engineering Department Employees with more than 3 years of service ---
ID: 101, Name: Alice Smith, Department: Engineering, Service Years: 5
ID: 103, Name: Charlie Williams, Department: Engineering, Service Years: 8

--- Names of all employees in Marketing ---
Bob Johnson
`

const wantFunctions = `Input: 5, 3 | Function: Add | Output: 8
Input: "Hello", "World" | Function: Concat | Output: "Hello World"
Input: 4 | Function: IsEven | Output: true
Input: 7 | Function: IsEven | Output: false
Input: "Ch" | Function: Greet | Output: "Hello Ch, this is a random message!"
Input: 30, 5 | Function: FutureAge | Output: 35
Input: 5.9 | Function: IsTall | Output: false
Input: 5, 3 | Function: SumMessage | Output: "The sum of 5 and 3 is 8"
Input: "World" | Function: Hello | Output: "Hello, World!"
`

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"directory", "functions", "fetch", "init", "browse", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	for _, flag := range []string{"debug", "workspace"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
}

func TestFetchCmd_Flags(t *testing.T) {
	cmd := fetchCmd(&globalFlags{})
	for _, flag := range []string{"url", "timeout", "jsonpath", "save", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on fetch command", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd(&globalFlags{})
	for _, flag := range []string{"path", "force"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on init command", flag)
		}
	}
}

// --- directory ---

func TestDirectoryCmd_DefaultOutput(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "directory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(wantDirectory, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectoryCmd_NoMatches(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "directory", "--department", "Legal", "--names-of", "Sales")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out, noMatches) != 2 {
		t.Fatalf("expected two no-match lines, got:\n%s", out)
	}
}

func TestDirectoryCmd_Where(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "directory", "--where", "dept:engineering AND years>=5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i := strings.Index(out, `--- Employees matching "dept:engineering AND years>=5" ---`)
	if i < 0 {
		t.Fatalf("expected where section, got:\n%s", out)
	}
	section := out[i:]
	if !strings.Contains(section, "Alice Smith") || !strings.Contains(section, "Charlie Williams") || strings.Contains(section, "Edward Jones") {
		t.Fatalf("unexpected matches:\n%s", section)
	}
}

func TestDirectoryCmd_InvalidWhere(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "directory", "--where", "salary>10")
	if !domain.IsKind(err, domain.KindInvalidQuery) {
		t.Fatalf("expected KindInvalidQuery, got %v", err)
	}
}

func TestDirectoryCmd_JSONFromDataFile(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, "people.yaml"), `employees:
  - {id: 1, first_name: Grace, last_name: Hopper, department: Engineering, years_of_service: 12}
  - {id: 2, first_name: Ada, last_name: Lovelace, department: Marketing, years_of_service: 4}
`)
	writeFile(t, filepath.Join(ws, "primer.yaml"), "primer:\n  directory:\n    data: people.yaml\n")

	out, err := runCLI(t, ws, "directory", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rep struct {
		Experienced []domain.Employee `json:"experienced"`
		Names       []string          `json:"names"`
	}
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(rep.Experienced) != 1 || rep.Experienced[0].FullName() != "Grace Hopper" {
		t.Fatalf("unexpected experienced: %+v", rep.Experienced)
	}
	if diff := cmp.Diff([]string{"Ada Lovelace"}, rep.Names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectoryCmd_MissingDataFile(t *testing.T) {
	ws := t.TempDir()
	_, err := runCLI(t, ws, "directory", "--data", filepath.Join(ws, "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestDirectoryCmd_UnsupportedFormat(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "directory", "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

// --- functions ---

func TestFunctionsCmd_PrintsLiteralExamples(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "functions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(wantFunctions, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestFunctionsSubcommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"functions", "add", "2", "40"}, "Input: 2, 40 | Function: Add | Output: 42\n"},
		{[]string{"functions", "add", "--", "-2", "5"}, "Input: -2, 5 | Function: Add | Output: 3\n"},
		{[]string{"functions", "join", "Go", "pher"}, `Input: "Go", "pher" | Function: Concat | Output: "Go pher"` + "\n"},
		{[]string{"functions", "even", "0"}, "Input: 0 | Function: IsEven | Output: true\n"},
		{[]string{"functions", "greet", "Ana"}, `Input: "Ana" | Function: Greet | Output: "Hello Ana, this is a random message!"` + "\n"},
		{[]string{"functions", "greet"}, `Input: "Ch" | Function: Greet | Output: "Hello Ch, this is a random message!"` + "\n"},
		{[]string{"functions", "age", "30", "5"}, "Input: 30, 5 | Function: FutureAge | Output: 35\n"},
		{[]string{"functions", "tall", "6.2"}, "Input: 6.2 | Function: IsTall | Output: true\n"},
		{[]string{"functions", "sum", "2", "40"}, `Input: 2, 40 | Function: SumMessage | Output: "The sum of 2 and 40 is 42"` + "\n"},
		{[]string{"functions", "hello", "Ana"}, `Input: "Ana" | Function: Hello | Output: "Hello, Ana!"` + "\n"},
	}
	for _, c := range cases {
		out, err := runCLI(t, t.TempDir(), c.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", c.args, err)
		}
		if out != c.want {
			t.Errorf("%v: got %q want %q", c.args, out, c.want)
		}
	}
}

func TestFunctionsSubcommands_RejectBadArgs(t *testing.T) {
	for _, args := range [][]string{
		{"functions", "add", "one", "2"},
		{"functions", "add", "1"},
		{"functions", "even", "3.5"},
		{"functions", "tall", "tall"},
		{"functions", "sum", "1", "x"},
		{"functions", "hello"},
	} {
		if _, err := runCLI(t, t.TempDir(), args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

// --- fetch ---

func TestFetchCmd_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":1,"id":1,"title":"delectus aut autem","completed":false}`))
	}))
	defer srv.Close()

	out, err := runCLI(t, t.TempDir(), "fetch", "--url", srv.URL, "--jsonpath", "title=$.title")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantInOrder := []string{
		"Attempting to fetch data from: " + srv.URL,
		"--- API Response ---",
		`"title":"delectus aut autem"`,
		"--- End of Response ---",
		"title = delectus aut autem",
		"Successfully fetched and displayed data.",
		"API call attempt finished.",
	}
	assertInOrder(t, out, wantInOrder)
}

func TestFetchCmd_ClientErrorExitsZero(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	out, err := runCLI(t, t.TempDir(), "fetch", "--url", srv.URL)
	if err != nil {
		t.Fatalf("fetch outcomes must not fail the command: %v", err)
	}
	assertInOrder(t, out, []string{
		"Request error: response status code does not indicate success: 404 (Not Found)",
		"Status code: 404",
		"API call attempt finished.",
	})
	if strings.Contains(out, "Successfully fetched") {
		t.Fatalf("unexpected success line:\n%s", out)
	}
}

func TestFetchCmd_TransportErrorExitsZero(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	out, err := runCLI(t, t.TempDir(), "fetch", "--url", url, "--timeout", "2s")
	if err != nil {
		t.Fatalf("fetch outcomes must not fail the command: %v", err)
	}
	assertInOrder(t, out, []string{"Request error: connection:", "API call attempt finished."})
	if strings.Contains(out, "Status code:") {
		t.Fatalf("transport errors carry no status:\n%s", out)
	}
}

func TestFetchCmd_InvalidURLIsUnclassified(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "fetch", "--url", "ftp://example.com/x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertInOrder(t, out, []string{"--- An unexpected error occurred ---", "Error: ", "API call attempt finished."})
}

func TestFetchCmd_JSONAndSave(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Set-Cookie", "sid=secret")
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	defer srv.Close()

	ws := t.TempDir()
	out, err := runCLI(t, ws, "fetch", "--url", srv.URL, "--save", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rep usecase.FetchReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if rep.Outcome.State != domain.FetchSuccess || rep.Outcome.Body != `{"id":7}` {
		t.Fatalf("unexpected outcome: %+v", rep.Outcome)
	}
	if rep.ArtifactID == "" {
		t.Fatalf("expected artifact id")
	}

	files, _ := filepath.Glob(filepath.Join(ws, "runs", "*.json"))
	if len(files) != 1 {
		t.Fatalf("expected one artifact, got %v", files)
	}
	b, _ := os.ReadFile(files[0])
	if strings.Contains(string(b), "sid=secret") {
		t.Fatalf("expected cookie masked in artifact:\n%s", b)
	}
	if _, err := os.Stat(filepath.Join(ws, "runs", "index.jsonl")); err != nil {
		t.Fatalf("expected index.jsonl: %v", err)
	}
}

func TestFetchCmd_InvalidJSONPathRule(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "fetch", "--url", "http://127.0.0.1:1", "--jsonpath", "title")
	if err == nil {
		t.Fatalf("expected rule error")
	}
}

// --- root ---

func TestRootCmd_RunsAllExamplesInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, "primer.yaml"), "primer:\n  fetch:\n    url: "+srv.URL+"\n    timeout: 5s\n")

	out, err := runCLI(t, ws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertInOrder(t, out, []string{
		"=== Employee Directory ===",
		"Bob Johnson",
		"=== Basic Functions ===",
		"Function: Add | Output: 8",
		"=== API Fetch ===",
		"Attempting to fetch data from: " + srv.URL,
		`{"ok":true}`,
		"API call attempt finished.",
	})

	if _, err := os.Stat(filepath.Join(ws, ".primer", "logs", "primer.log")); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}

func TestRootCmd_InvalidConfigFails(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, "primer.yaml"), "primer:\n  fetch:\n    timeout: later\n")

	_, err := runCLI(t, ws, "functions")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

// --- init / version ---

func TestInitCmd_CreatesWorkspace(t *testing.T) {
	ws := t.TempDir()
	out, err := runCLI(t, ws, "init")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Workspace ready at "+ws) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	for _, f := range []string{"primer.yaml", filepath.Join("data", "employees.yaml"), ".env.example", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(ws, f)); err != nil {
			t.Fatalf("expected %s: %v", f, err)
		}
	}

	out, err = runCLI(t, ws, "directory")
	if err != nil {
		t.Fatalf("directory after init: %v", err)
	}
	if diff := cmp.Diff(wantDirectory, out); diff != "" {
		t.Fatalf("initialized data differs (-want +got):\n%s", diff)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "primer ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

// --- printers ---

func TestPrintPrettyFetch_UnclassifiedKeepsStatus(t *testing.T) {
	rep := usecase.FetchReport{Outcome: domain.FetchOutcome{
		State:      domain.FetchUnclassifiedError,
		StatusCode: 200,
		Error:      &domain.RunError{Kind: domain.RunErrorUnknown, Message: "unexpected EOF"},
	}}
	var buf bytes.Buffer
	printPrettyFetch(&buf, rep)

	assertInOrder(t, buf.String(), []string{
		"--- An unexpected error occurred ---",
		"Error: unexpected EOF",
		"Status code: 200",
		"API call attempt finished.",
	})
}

func TestPrintExtracts_SortedWithFailures(t *testing.T) {
	var buf bytes.Buffer
	printExtracts(&buf, []domain.ExtractResult{
		{Name: "z", Success: true, Message: "1"},
		{Name: "a", Success: false, Message: "no match"},
	})
	want := "\nExtracted:\n  a: failed: no match\n  z = 1\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestTUIExamples_RunIntoWriter(t *testing.T) {
	clearPrimerEnv(t)
	ws := &workspaceCtx{root: t.TempDir(), cfg: domain.DefaultConfig(), log: slog.New(slog.DiscardHandler)}

	exs := tuiExamples(ws)
	if len(exs) != 3 {
		t.Fatalf("expected 3 examples, got %d", len(exs))
	}

	var buf bytes.Buffer
	if err := exs[1].Run(context.Background(), &buf); err != nil {
		t.Fatalf("functions example: %v", err)
	}
	if buf.String() != wantFunctions {
		t.Fatalf("unexpected functions output:\n%s", buf.String())
	}
}

func assertInOrder(t *testing.T, out string, wants []string) {
	t.Helper()
	rest := out
	for _, w := range wants {
		i := strings.Index(rest, w)
		if i < 0 {
			t.Fatalf("expected %q (in order) in output:\n%s", w, out)
		}
		rest = rest[i+len(w):]
	}
}
