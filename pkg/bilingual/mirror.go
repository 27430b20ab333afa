// Package bilingual implements the mirror-until-diverged editing rule for
// bilingual name fields. While the user has not distinctly edited the
// primary-locale field, edits to the secondary-locale field mirror into it,
// so a record saved with only one name filled in stores the same text for
// both locales. Once the primary field is edited on its own, mirroring stops
// for the rest of the editing session.
//
// This is a form-entry convenience, not a persistence invariant. Dirtiness
// is tracked with an explicit flag rather than inferred from value
// comparison, so clearing the primary field back to empty behaves
// predictably.
package bilingual

import (
	"strings"

	"github.com/omotenashi/partner-crm/internal/core/domain"
)

// Mirror tracks one bilingual field through an editing session. The primary
// locale is English, mirrored from Japanese input until dirtied.
type Mirror struct {
	primary      string
	secondary    string
	primaryDirty bool
}

// NewMirror starts a fresh editing session with empty fields.
func NewMirror() *Mirror {
	return &Mirror{}
}

// Edit starts an editing session over an existing value. The primary field
// counts as already dirtied when the two locales have diverged.
func Edit(v domain.BilingualString) *Mirror {
	return &Mirror{
		primary:      v.EN,
		secondary:    v.JA,
		primaryDirty: v.EN != v.JA,
	}
}

// SetPrimary records a direct edit of the primary field. A non-blank value
// marks the field dirty, permanently disabling mirroring for this session;
// clearing it back to blank re-enables mirroring.
func (m *Mirror) SetPrimary(value string) {
	m.primary = value
	m.primaryDirty = strings.TrimSpace(value) != ""
}

// SetSecondary records an edit of the secondary field, mirroring it into the
// primary field unless the primary has been dirtied.
func (m *Mirror) SetSecondary(value string) {
	m.secondary = value
	if !m.primaryDirty {
		m.primary = value
	}
}

// Value returns the field as it would be saved.
func (m *Mirror) Value() domain.BilingualString {
	return domain.BilingualString{EN: m.primary, JA: m.secondary}
}
