package bilingual

import (
	"testing"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

func TestMirror_SecondaryMirrorsUntilPrimaryEdited(t *testing.T) {
	m := NewMirror()

	m.SetSecondary("ホテル")
	if v := m.Value(); v.EN != "ホテル" || v.JA != "ホテル" {
		t.Fatalf("secondary edit should mirror into primary: %+v", v)
	}

	m.SetPrimary("Hotel")
	m.SetSecondary("グランドホテル")
	if v := m.Value(); v.EN != "Hotel" || v.JA != "グランドホテル" {
		t.Fatalf("dirty primary must stop mirroring: %+v", v)
	}
}

func TestMirror_ClearingPrimaryReenablesMirroring(t *testing.T) {
	m := NewMirror()
	m.SetPrimary("Hotel")
	m.SetSecondary("ホテル")
	if v := m.Value(); v.EN != "Hotel" {
		t.Fatalf("primary overwritten while dirty: %+v", v)
	}

	m.SetPrimary("")
	m.SetSecondary("旅館")
	if v := m.Value(); v.EN != "旅館" || v.JA != "旅館" {
		t.Fatalf("cleared primary should mirror again: %+v", v)
	}
}

func TestMirror_BlankPrimaryEditDoesNotDirty(t *testing.T) {
	m := NewMirror()
	m.SetPrimary("   ")
	m.SetSecondary("ホテル")
	if v := m.Value(); v.EN != "ホテル" {
		t.Fatalf("whitespace-only primary edit must not dirty: %+v", v)
	}
}

func TestEdit_ExistingDivergedValueStartsDirty(t *testing.T) {
	m := Edit(domain.BilingualString{EN: "Hotel", JA: "ホテル"})
	m.SetSecondary("旅館")
	if v := m.Value(); v.EN != "Hotel" || v.JA != "旅館" {
		t.Fatalf("diverged value should start dirty: %+v", v)
	}
}

func TestEdit_ExistingMirroredValueStaysMirrored(t *testing.T) {
	m := Edit(domain.BilingualString{EN: "ホテル", JA: "ホテル"})
	m.SetSecondary("旅館")
	if v := m.Value(); v.EN != "旅館" || v.JA != "旅館" {
		t.Fatalf("matching locales should keep mirroring: %+v", v)
	}
}
