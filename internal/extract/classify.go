package extract

import (
	"errors"
	"fmt"

	"github.com/telemetrics/gitingest/internal/gitsource"
)

// ErrMissingBlob reports diff metadata whose flags promise a blob that is not
// there. The version-control layer guarantees blob presence consistent with
// the flags, so hitting this is an input-contract violation, not a data
// condition to tolerate.
var ErrMissingBlob = errors.New("blob size missing")

// Classify derives the signed size delta and change type for one file change.
//
// The size delta is computed purely from blob presence and the deleted/new
// flags: a deletion is the negative of the original size, an addition is the
// new size, anything else is pre minus post. The change type is derived
// independently with precedence rename > delete > add > modify, so a renamed
// file tags "R" even when the size rule fired as a deletion or addition.
func Classify(m gitsource.DiffMeta) (int64, ChangeType, error) {
	var delta int64
	switch {
	case m.Deleted && !m.HasPostBlob:
		if !m.HasPreBlob {
			return 0, "", fmt.Errorf("%w: deleted %s has no pre blob", ErrMissingBlob, m.APath)
		}
		delta = -m.PreSize
	case m.New && !m.HasPreBlob:
		if !m.HasPostBlob {
			return 0, "", fmt.Errorf("%w: added %s has no post blob", ErrMissingBlob, m.BPath)
		}
		delta = m.PostSize
	default:
		if !m.HasPreBlob || !m.HasPostBlob {
			return 0, "", fmt.Errorf("%w: modified %s", ErrMissingBlob, m.APath)
		}
		delta = m.PreSize - m.PostSize
	}

	return delta, changeType(m), nil
}

func changeType(m gitsource.DiffMeta) ChangeType {
	switch {
	case m.Renamed:
		return ChangeRename
	case m.Deleted:
		return ChangeDelete
	case m.New:
		return ChangeAdd
	default:
		return ChangeModify
	}
}
