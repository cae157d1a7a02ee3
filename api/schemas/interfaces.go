// api/schemas/interfaces.go
package schemas

import (
	"context"
	"encoding/json"
)

// -- Page Context --

// PageContext is the handle the pipeline holds on one live page. It is the
// transport boundary of the system: only selector strings and JSON cross it,
// never DOM references. The browser package provides the CDP implementation;
// tests substitute a scripted mock.
type PageContext interface {
	// Navigate loads the given URL and blocks until the document is ready.
	Navigate(ctx context.Context, url string) error
	// Snapshot returns the current serialized DOM (outerHTML of the
	// document element).
	Snapshot(ctx context.Context) (string, error)
	// ExecuteScript evaluates a JavaScript expression in the page and
	// returns its JSON-serialized result.
	ExecuteScript(ctx context.Context, script string, args []interface{}) (json.RawMessage, error)
	// CurrentURL reports the page's present location.
	CurrentURL(ctx context.Context) (string, error)
	// Close releases the underlying tab.
	Close() error
}

// -- Profile Store --

// ProfileStore is the persistence port for profiles. Implementations must
// keep the collection invariants: never empty once initialized, delete of the
// last profile rejected, and exactly one active profile after every write
// (self-healing: if none is marked active, the first becomes active).
type ProfileStore interface {
	ListProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, id string) (*Profile, error)
	// ActiveProfile returns the currently active profile.
	ActiveProfile(ctx context.Context) (*Profile, error)
	// SaveProfile upserts by ID, generating an ID when empty.
	SaveProfile(ctx context.Context, p *Profile) error
	// DeleteProfile rejects the delete when exactly one profile remains.
	DeleteProfile(ctx context.Context, id string) error
	// SetActive marks the given profile active and every other inactive.
	SetActive(ctx context.Context, id string) error
	Close() error
}

// -- Notification --

// Notifier receives pass-level outcomes for user-facing display. Rendering
// is entirely the implementation's concern; the core only reports counts.
type Notifier interface {
	FillCompleted(report *FillReport)
	FillFailed(url string, err error)
}
