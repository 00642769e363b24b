package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/solidkit/internal/domain"
)

// execute runs the root command inside a fresh workspace directory.
func execute(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-w", root}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[strings.Fields(sub.Use)[0]] = true
	}
	for _, expected := range []string{"pay", "notify", "device", "animal", "register", "inspect", "run", "scenarios", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"workspace", "config", "format", "debug"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected --%s persistent flag", flag)
		}
	}
}

func TestRunCmd_Flags(t *testing.T) {
	cmd := runCmd(&globalFlags{})
	for _, flag := range []string{"file", "no-save"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on run command", flag)
		}
	}
}

// --- commands end to end ---

func TestPay_Pretty(t *testing.T) {
	out, err := execute(t, t.TempDir(), "pay", "paypal", "200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Processing PayPal payment of $200.00") {
		t.Errorf("expected variant line, got:\n%s", out)
	}
	if !strings.Contains(out, "paid 200.00 via") {
		t.Errorf("expected summary line, got:\n%s", out)
	}
}

func TestPay_JSON(t *testing.T) {
	out, err := execute(t, t.TempDir(), "--format", "json", "pay", "crypto", "300")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var receipt domain.Receipt
	if err := json.Unmarshal([]byte(out), &receipt); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if receipt.Method != "crypto" || receipt.Amount != 300 {
		t.Fatalf("unexpected receipt %+v", receipt)
	}
}

func TestPay_Errors(t *testing.T) {
	root := t.TempDir()

	if _, err := execute(t, root, "pay", "cash", "1"); !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected not found for unknown method, got %v", err)
	}
	if _, err := execute(t, root, "pay", "paypal", "-5"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Errorf("expected invalid input for negative amount, got %v", err)
	}
	if _, err := execute(t, root, "pay", "paypal", "abc"); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestPay_FlagsBeforeMethodStillParse(t *testing.T) {
	out, err := execute(t, t.TempDir(), "pay", "--format", "json", "paypal", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var receipt domain.Receipt
	if err := json.Unmarshal([]byte(out), &receipt); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	_, err = execute(t, t.TempDir(), "pay", "--format", "json", "paypal", "-0.01")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid input for negative amount after flags, got %v", err)
	}
}

func TestNotify_JoinsMessage(t *testing.T) {
	out, err := execute(t, t.TempDir(), "notify", "sms", "Hello", "via", "SMS!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Sending SMS: Hello via SMS!") {
		t.Errorf("expected joined message, got:\n%s", out)
	}
}

func TestDevice_CameraChargeIsUnsupported(t *testing.T) {
	out, err := execute(t, t.TempDir(), "device", "disposable-camera", "--charge")
	if !domain.IsKind(err, domain.KindUnsupportedCapability) {
		t.Fatalf("expected unsupported capability, got %v", err)
	}
	if !strings.Contains(out, "Disposable camera is turning off.") {
		t.Errorf("expected power cycle to run first, got:\n%s", out)
	}
}

func TestDevice_PhoneCharges(t *testing.T) {
	out, err := execute(t, t.TempDir(), "device", "phone", "--charge")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Phone is charging.") {
		t.Errorf("expected charge line, got:\n%s", out)
	}
}

func TestAnimal_FishDoesNotWalk(t *testing.T) {
	out, err := execute(t, t.TempDir(), "animal", "fish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "walking") {
		t.Errorf("fish must not walk, got:\n%s", out)
	}
}

func TestRegister(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, root, "register", "--email", "Example@Domain.com", "--password", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Welcome, example@domain.com!") {
		t.Errorf("expected welcome message, got:\n%s", out)
	}

	_, err = execute(t, root, "register", "--email", "invalid-email", "--password", "1234")
	if err == nil || !strings.Contains(err.Error(), "rejected") {
		t.Fatalf("expected rejection error, got %v", err)
	}
}

func TestRegister_MinLengthFromConfig(t *testing.T) {
	root := t.TempDir()
	cfg := "registration:\n  min_password_length: 20\n"
	if err := os.WriteFile(filepath.Join(root, "solidkit.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, root, "register", "--email", "a@b.co", "--password", "password123")
	if err == nil || !strings.Contains(err.Error(), "at least 20") {
		t.Fatalf("expected length rejection from config, got %v", err)
	}
}

func TestInspect_JSON(t *testing.T) {
	out, err := execute(t, t.TempDir(), "--format", "json", "inspect", "device")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var infos []variantInfo
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	caps := map[string][]string{}
	for _, in := range infos {
		caps[in.Name] = in.Capabilities
	}
	if got := strings.Join(caps["phone"], ","); got != "Rechargeable,Switchable" {
		t.Errorf("phone capabilities = %q", got)
	}
	if got := strings.Join(caps["disposable-camera"], ","); got != "Switchable" {
		t.Errorf("camera capabilities = %q", got)
	}
}

func TestInspect_UnknownKind(t *testing.T) {
	if _, err := execute(t, t.TempDir(), "inspect", "vehicle"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestInitThenRun(t *testing.T) {
	root := t.TempDir()

	if _, err := execute(t, root, "init", "--path", root); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, name := range []string{"payments", "notifications", "devices", "animals", "registration"} {
		out, err := execute(t, root, "run", "-f", name)
		if err != nil {
			t.Fatalf("run %s: %v\n%s", name, err, out)
		}
		if !strings.Contains(out, "0 failed") {
			t.Errorf("run %s: expected no failures, got:\n%s", name, out)
		}
	}

	entries, err := os.ReadDir(filepath.Join(root, "reports"))
	if err != nil {
		t.Fatalf("read reports: %v", err)
	}
	// five reports plus index.jsonl
	if len(entries) != 6 {
		t.Fatalf("expected 6 entries under reports/, got %d", len(entries))
	}

	out, err := execute(t, root, "scenarios")
	if err != nil {
		t.Fatalf("scenarios: %v", err)
	}
	if !strings.Contains(out, "- devices") {
		t.Errorf("expected devices in list, got:\n%s", out)
	}
}

func TestRun_NoSaveAndFailures(t *testing.T) {
	root := t.TempDir()
	scenario := `name: broken
steps:
  - name: wrong channel
    kind: notification
    variant: sms
    message: hi
    expect:
      - path: $.channel
        equals: email
`
	p := filepath.Join(root, "broken.yaml")
	if err := os.WriteFile(p, []byte(scenario), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, root, "run", "-f", p, "--no-save")
	if err == nil || !strings.Contains(err.Error(), "1 failed step") {
		t.Fatalf("expected failure error, got %v", err)
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("expected FAIL in output, got:\n%s", out)
	}
	if _, statErr := os.Stat(filepath.Join(root, "reports")); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("expected no reports dir with --no-save, stat err=%v", statErr)
	}
}

func TestRun_MissingScenario(t *testing.T) {
	_, err := execute(t, t.TempDir(), "run", "-f", "nope")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFormat_Invalid(t *testing.T) {
	if _, err := execute(t, t.TempDir(), "--format", "xml", "animal", "dog"); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "solidkit ") {
		t.Errorf("unexpected version output %q", out)
	}
}

// --- printReport ---

func TestPrintReport_JSON_ValidOutput(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	report := domain.Report{ID: "abc123", ScenarioName: "demo", StartedAt: now, EndedAt: now.Add(time.Second)}

	var buf bytes.Buffer
	if err := printReport(&buf, report, "json", defaultTheme()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded domain.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.ID != "abc123" || decoded.ScenarioName != "demo" {
		t.Fatalf("unexpected decoded %+v", decoded)
	}
}

func TestPrintReport_UnsupportedFormat(t *testing.T) {
	if err := printReport(&bytes.Buffer{}, domain.Report{}, "xml", defaultTheme()); err == nil {
		t.Fatal("expected error")
	}
}

func TestPrintPrettyReport_WithResults(t *testing.T) {
	report := domain.Report{
		ScenarioName: "mixed",
		Steps: []domain.StepResult{
			{
				Name: "pay", Kind: domain.StepPayment, Variant: "paypal",
				Checks: []domain.CheckResult{
					{Name: "jsonpath.eq", Passed: true, Message: "ok"},
					{Name: "jsonpath.exists", Passed: false, Message: "not found"},
				},
			},
			{
				Name: "charge", Kind: domain.StepDevice, Variant: "disposable-camera",
				Error: &domain.StepError{Kind: domain.KindUnsupportedCapability, Message: "no Rechargeable"},
			},
		},
	}

	var buf bytes.Buffer
	printPrettyReport(&buf, report, defaultTheme())
	out := buf.String()

	for _, want := range []string{"payment/paypal", "1 pass / 1 fail", "no Rechargeable (unsupported_capability)", "2 step(s), 2 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestCountCheckPassFail(t *testing.T) {
	pass, fail := countCheckPassFail([]domain.CheckResult{{Passed: true}, {Passed: false}, {Passed: true}})
	if pass != 2 || fail != 1 {
		t.Errorf("expected pass=2 fail=1, got pass=%d fail=%d", pass, fail)
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

// --- userMessage ---

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&domain.OpError{Op: "scenariofile.resolve", Kind: domain.KindNotFound, Path: "x.yaml"}, "Scenario not found: x.yaml"},
		{&domain.OpError{Op: "scenariofile.load", Kind: domain.KindInvalidConfig, Path: "/a/b.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at b.yaml line 3"},
		{domain.UnsupportedCapability("usecase.operate_device", "Rechargeable", struct{}{}), "Unsupported capability: "},
		{errors.New("plain"), "plain"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); !strings.HasPrefix(got, c.want) {
			t.Errorf("userMessage(%v) = %q, want prefix %q", c.err, got, c.want)
		}
	}
	if userMessage(nil) != "" {
		t.Error("expected empty message for nil")
	}
}
