package grpcx

import (
	"testing"

	gcodes "google.golang.org/grpc/codes"
	"winstat.dev/winstat"
	"winstat.dev/winstat/mapper"
)

func TestToStatus_MapsCodeAndAttachesDetail(t *testing.T) {
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	c := winstat.MustNew(5, 3, 7, "E_ACCESSDENIED",
		winstat.WithMessageOption("Access is denied."))

	st := ToStatus(m, c)
	if st.Code() != gcodes.PermissionDenied {
		t.Fatalf("Code = %v, want %v", st.Code(), gcodes.PermissionDenied)
	}
	if st.Message() != "Access is denied." {
		t.Fatalf("Message = %q", st.Message())
	}

	info, ok := FromError(st.Err())
	if !ok {
		t.Fatalf("FromError found no ErrorInfo detail")
	}
	if info.GetReason() != "E_ACCESSDENIED" || info.GetDomain() != Domain {
		t.Fatalf("detail identity wrong: reason=%q domain=%q", info.GetReason(), info.GetDomain())
	}
	md := info.GetMetadata()
	if md[MetaValue] != "0xC0070005" {
		t.Fatalf("metadata value = %q, want 0xC0070005", md[MetaValue])
	}
	if md[MetaSeverity] != "3" || md[MetaFacility] != "0x007" || md[MetaID] != "0x0005" {
		t.Fatalf("metadata fields wrong: %v", md)
	}
}

func TestToStatus_SymbolFallbackMessage(t *testing.T) {
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	c := winstat.MustNew(2, 3, 7, "X_FILE_NOT_FOUND")

	st := ToStatus(m, c)
	if st.Message() != "X_FILE_NOT_FOUND" {
		t.Fatalf("Message = %q, want the symbol when no message lines exist", st.Message())
	}
	if st.Code() != gcodes.NotFound {
		t.Fatalf("Code = %v, want %v", st.Code(), gcodes.NotFound)
	}
}

func TestToStatus_NilCode(t *testing.T) {
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	st := ToStatus(m, nil)
	if st.Code() != gcodes.OK || len(st.Details()) != 0 {
		t.Fatalf("nil code must give a bare OK status, got %v with %d details", st.Code(), len(st.Details()))
	}
}

func TestFromError_ForeignError(t *testing.T) {
	if _, ok := FromError(nil); ok {
		t.Fatalf("nil error must not carry a detail")
	}
	if _, ok := FromError(errPlain); ok {
		t.Fatalf("plain error must not carry a detail")
	}
}

func TestUnpackError_RoundTrip(t *testing.T) {
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	c := winstat.MustNew(5, 3, 7, "E_ACCESSDENIED")

	value, symbol, ok := UnpackError(ToStatus(m, c).Err())
	if !ok {
		t.Fatalf("UnpackError found no detail")
	}
	if value != c.Value() || symbol != "E_ACCESSDENIED" {
		t.Fatalf("got value=0x%08X symbol=%q, want 0x%08X E_ACCESSDENIED", value, symbol, c.Value())
	}

	sev, fac, id := winstat.Unpack(value)
	if sev != 3 || fac != 7 || id != 5 {
		t.Fatalf("Unpack(0x%08X) = (%d, %d, %d), want (3, 7, 5)", value, sev, fac, id)
	}
}

var errPlain = errNotAStatus{}

type errNotAStatus struct{}

func (errNotAStatus) Error() string { return "not a grpc status" }
