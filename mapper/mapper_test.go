package mapper

import (
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"
	"winstat.dev/winstat/apis"
	"winstat.dev/winstat/facility"
	"winstat.dev/winstat/severity"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Spot-check a few canonical defaults from defaults.go
	check := func(sev uint8, fac, id uint16, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(sev, fac, id)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%d, 0x%03X, 0x%04X) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				sev, fac, id, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(severity.Success.Value(), 0, 0, 200, codes.OK)
	check(severity.Informational.Value(), 0, 0, 200, codes.OK)
	check(severity.Warning.Value(), 0, 0, 500, codes.Unknown)
	check(severity.Error.Value(), 0, 0, 500, codes.Internal)
	// Built-in Win32 id spans: ERROR_FILE_NOT_FOUND and ERROR_ACCESS_DENIED.
	check(severity.Error.Value(), facility.Win32.Value(), 2, 404, codes.NotFound)
	check(severity.Error.Value(), facility.Win32.Value(), 5, 403, codes.PermissionDenied)
	// Built-in facility defaults for failures.
	check(severity.Error.Value(), facility.Security.Value(), 99, 403, codes.PermissionDenied)
	check(severity.Error.Value(), facility.RPC.Value(), 99, 502, codes.Unavailable)
}

func TestPriority_OverrideOverRangeOverFacility_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPFacilityDefault(facility.Storage, 503),   // facility
		WithHTTPRange(facility.Storage, 0x10, 0x1F, 599), // range
		WithHTTPOverride(facility.Storage, 0x12, 418),    // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(severity.Error.Value(), facility.Storage.Value(), 0x12)
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
	// An id inside the span but without an override takes the range tier.
	st = m.Status(severity.Error.Value(), facility.Storage.Value(), 0x11)
	if st.HTTP != 599 {
		t.Fatalf("range must beat facility default; got %d, want 599", st.HTTP)
	}
	// An id outside the span falls back to the facility default.
	st = m.Status(severity.Error.Value(), facility.Storage.Value(), 0x20)
	if st.HTTP != 503 {
		t.Fatalf("facility default expected; got %d, want 503", st.HTTP)
	}
}

func TestPriority_OverrideOverRangeOverFacility_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCFacilityDefault(facility.Storage, int(codes.Unavailable)),
		WithGRPCRange(facility.Storage, 0x10, 0x1F, int(codes.Internal)),
		WithGRPCOverride(facility.Storage, 0x12, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(severity.Error.Value(), facility.Storage.Value(), 0x12)
	if st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Aborted)
	}
}

func TestRange_NarrowestSpanWins(t *testing.T) {
	m, err := New(
		WithHTTPRange(facility.Storage, 0x00, 0xFF, 503),
		WithHTTPRange(facility.Storage, 0x10, 0x1F, 599),
		WithHTTPRange(facility.Storage, 0x12, 0x12, 410),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// The single-id span beats both wider spans.
	st := m.Status(severity.Error.Value(), facility.Storage.Value(), 0x12)
	if st.HTTP != 410 {
		t.Fatalf("narrowest span must win: got %d, want 410", st.HTTP)
	}
	// The mid-width span beats the block-wide one.
	st = m.Status(severity.Error.Value(), facility.Storage.Value(), 0x11)
	if st.HTTP != 599 {
		t.Fatalf("narrowest span must win: got %d, want 599", st.HTTP)
	}
	st = m.Status(severity.Error.Value(), facility.Storage.Value(), 0x42)
	if st.HTTP != 503 {
		t.Fatalf("wide span expected: got %d, want 503", st.HTTP)
	}
}

func TestSeverityGating_SuccessSkipsFailureRules(t *testing.T) {
	m, err := New(
		WithHTTPOverride(facility.Win32, 5, 451),
		WithHTTPFacilityDefault(facility.Security, 403),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// A success-class code must not inherit failure overrides or facility
	// defaults, even when facility and id match a rule exactly.
	st := m.Status(severity.Success.Value(), facility.Win32.Value(), 5)
	if st.HTTP != 200 || st.GRPC != codes.OK {
		t.Fatalf("success class must use the severity default; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}
	st = m.Status(severity.Informational.Value(), facility.Security.Value(), 99)
	if st.HTTP != 200 || st.GRPC != codes.OK {
		t.Fatalf("informational class must use the severity default; got HTTP=%d GRPC=%v", st.HTTP, st.GRPC)
	}
	// The same fields with a failure-class severity do use the rules.
	st = m.Status(severity.Error.Value(), facility.Win32.Value(), 5)
	if st.HTTP != 451 {
		t.Fatalf("failure class must use the override; got %d, want 451", st.HTTP)
	}
}

func TestNew_RejectsOutOfRangeKeys(t *testing.T) {
	wide := facility.New("toowide", 0x1000, "FACILITY_TOO_WIDE")
	if _, err := New(WithHTTPFacilityDefault(wide, 500)); err == nil {
		t.Fatalf("New must reject a facility key above 12 bits")
	}
	if _, err := New(WithGRPCOverride(wide, 1, int(codes.Internal))); err == nil {
		t.Fatalf("New must reject an override facility above 12 bits")
	}
	hot := severity.New("scalding", 4)
	if _, err := New(WithHTTPSeverityDefault(hot, 500)); err == nil {
		t.Fatalf("New must reject a severity key above 2 bits")
	}
}

func TestNew_RejectsInvalidSpan(t *testing.T) {
	_, err := New(WithHTTPRange(facility.Storage, 0x20, 0x10, 503))
	if err == nil {
		t.Fatalf("New must reject a span with lo > hi")
	}
	if !strings.Contains(err.Error(), "0x0020") {
		t.Fatalf("span bounds should appear in the error: %v", err)
	}
}

func TestExplain_Sources_And_Span(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(severity.Error.Value(), facility.Win32.Value(), 2)
	if !strings.Contains(exp, `source=range`) {
		t.Fatalf("Explain must include source=range:\n%s", exp)
	}
	if !strings.Contains(exp, `span=[0x0002,0x0003]`) {
		t.Fatalf("Explain must include the matched span:\n%s", exp)
	}
	if !strings.Contains(exp, `grpc:`) || !strings.Contains(exp, `http:`) {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}
	// A success-class code resolves through the severity tier.
	exp = m.Explain(severity.Success.Value(), facility.Win32.Value(), 2)
	if !strings.Contains(exp, `source=severity`) {
		t.Fatalf("success class must explain as source=severity:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPRange(facility.Storage, 0x10, 0x1F, 599),
		WithHTTPOverride(facility.Win32, 5, 451),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(severity.Error.Value(), facility.Storage.Value(), 0x12)
				_ = m.Status(severity.Error.Value(), facility.Win32.Value(), 5)
				_ = m.Status(severity.Success.Value(), 0, 0)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_SeverityDefault(t *testing.B) {
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(severity.Success.Value(), 0, 0)
	}
}

func BenchmarkMapperStatus_RangeHit(t *testing.B) {
	m, _ := New(
		WithHTTPRange(facility.Storage, 0x10, 0x1F, 599),
		WithGRPCRange(facility.Storage, 0x10, 0x1F, int(codes.Unavailable)),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(severity.Error.Value(), facility.Storage.Value(), 0x12)
	}
}

func BenchmarkMapperStatus_Override(t *testing.B) {
	m, _ := New(
		WithHTTPOverride(facility.Storage, 0x12, 418),
		WithGRPCOverride(facility.Storage, 0x12, int(codes.Aborted)),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(severity.Error.Value(), facility.Storage.Value(), 0x12)
	}
}

func BenchmarkMapperStatus_Fallback(t *testing.B) {
	// Force the path without override/range/facility rules.
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(severity.Error.Value(), facility.Null.Value(), 0x9999)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
