package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"convoyage/internal/domain/billing"
	"convoyage/internal/domain/entities"
	"convoyage/internal/domain/form"
	"convoyage/internal/usecase/interfaces"
	"convoyage/pkg"

	"github.com/google/uuid"
)

var (
	ErrUnknownWizardKind = errors.New("unknown wizard kind")
	ErrInvalidOwnerID    = errors.New("invalid owner id")
	ErrSessionNotFound   = errors.New("wizard session not found")
	ErrStepNotNavigable  = errors.New("step not navigable")
	ErrAlreadyFirstStep  = errors.New("already at first step")
	ErrStepIncomplete    = errors.New("current step has missing required fields")
	ErrNotLastStep       = errors.New("submit only allowed at the last step")
	ErrValuesInvalid     = errors.New("form values failed validation")
	ErrNoLineItems       = errors.New("invoice requires at least one line item")
	ErrSubmitInFlight    = errors.New("submission already in flight")
	ErrCloseNeedsConfirm = errors.New("unsaved changes, close needs confirmation")
)

// IWizardUseCase drives the multi-step creation wizard: session lifecycle,
// step transitions, draft persistence, and final submission.

type IWizardUseCase interface {
	Start(ctx context.Context, kind WizardKind, ownerID string, initial map[string]interface{}) (WizardState, error)
	Get(ctx context.Context, sessionID string) (WizardState, error)
	SetValues(ctx context.Context, sessionID string, values form.Values) (WizardState, error)
	Next(ctx context.Context, sessionID string) (WizardState, error)
	Prev(ctx context.Context, sessionID string) (WizardState, error)
	JumpTo(ctx context.Context, sessionID string, step int) (WizardState, error)
	Submit(ctx context.Context, sessionID string) (SubmitResult, error)
	Close(ctx context.Context, sessionID string, confirm bool) (bool, error)
	ClearDraft(ctx context.Context, kind WizardKind, ownerID string) error
}

// WizardState is the snapshot handed to the HTTP layer. Values is a deep
// copy; mutating it cannot touch the live session.
type WizardState struct {
	SessionID      string
	Kind           WizardKind
	OwnerID        string
	Step           int
	HighestVisited int
	TotalSteps     int
	Values         form.Values
	StepMeta       []form.StepMeta
	FieldErrors    map[string]form.FieldError
	Totals         billing.Totals
	Dirty          bool
	DraftRestored  bool
}

// SubmitResult reports what the submission created.
type SubmitResult struct {
	MissionID      string
	DocumentID     string
	DocumentNumber string
}

type wizardSession struct {
	mu sync.Mutex

	id      string
	cfg     WizardConfig
	ownerID string

	values         form.Values
	step           int
	highestVisited int
	dirty          bool
	restored       bool
	submitting     bool

	meta []form.StepMeta

	valueGuard *pkg.ChangeGuard
	debouncer  *pkg.Debouncer
}

type WizardUseCase struct {
	missionRepo interfaces.IMissionRepository
	docRepo     interfaces.IDocumentRepository
	seqRepo     interfaces.ISequenceRepository
	draftRepo   interfaces.IDraftRepository

	mu       sync.Mutex
	sessions map[string]*wizardSession

	// now is injectable so draft expiry is testable with a fixed clock.
	now func() time.Time

	// onChange fires after a session's state actually changed. Guarded by
	// the session's change guard: structurally identical updates never
	// re-fire it.
	onChange func(sessionID string)
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	missionRepo interfaces.IMissionRepository,
	docRepo interfaces.IDocumentRepository,
	seqRepo interfaces.ISequenceRepository,
	draftRepo interfaces.IDraftRepository,
) *WizardUseCase {
	return &WizardUseCase{
		missionRepo: missionRepo,
		docRepo:     docRepo,
		seqRepo:     seqRepo,
		draftRepo:   draftRepo,
		sessions:    map[string]*wizardSession{},
		now:         time.Now,
	}
}

// WithClock replaces the time source. Test hook.
func (u *WizardUseCase) WithClock(now func() time.Time) *WizardUseCase {
	u.now = now
	return u
}

// SetOnChange registers the downstream change listener.
func (u *WizardUseCase) SetOnChange(fn func(sessionID string)) {
	u.onChange = fn
}

// Start opens a session for one wizard kind. Defaults are merged with any
// caller-supplied initial values; a fresh-enough draft, when present,
// overrides both and restores step position.
func (u *WizardUseCase) Start(ctx context.Context, kind WizardKind, ownerID string, initial map[string]interface{}) (WizardState, error) {
	cfg, ok := configFor(kind)
	if !ok {
		return WizardState{}, ErrUnknownWizardKind
	}
	if ownerID == "" {
		return WizardState{}, ErrInvalidOwnerID
	}

	s := &wizardSession{
		id:             uuid.NewString(),
		cfg:            cfg,
		ownerID:        ownerID,
		values:         form.Merge(form.Defaults(), initial),
		step:           1,
		highestVisited: 1,
		valueGuard:     pkg.NewChangeGuard(),
		debouncer:      pkg.NewDebouncer(cfg.DraftDebounce),
	}

	if d, found := u.loadDraft(ctx, cfg, ownerID); found {
		s.values = d.Values
		s.step = clamp(d.Step, 1, cfg.TotalSteps)
		s.highestVisited = clamp(d.HighestVisited, s.step, cfg.TotalSteps)
		s.restored = true
	}

	s.valueGuard.Changed(s.values)
	s.meta = form.ComputeStepMeta(s.values, cfg.Required, cfg.TotalSteps)

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	return u.snapshot(s), nil
}

func (u *WizardUseCase) Get(ctx context.Context, sessionID string) (WizardState, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return WizardState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return u.snapshot(s), nil
}

// SetValues replaces the working record. Structurally identical values are
// a no-op: no recompute, no draft write, no listener fire.
func (u *WizardUseCase) SetValues(ctx context.Context, sessionID string, values form.Values) (WizardState, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return WizardState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	values.Vehicle.LicensePlate = form.NormalizeLicensePlate(values.Vehicle.LicensePlate)

	if !s.valueGuard.Changed(values) {
		return u.snapshot(s), nil
	}

	s.values = values
	s.dirty = true
	s.meta = form.ComputeStepMeta(s.values, s.cfg.Required, s.cfg.TotalSteps)
	u.scheduleDraftSave(s)
	if u.onChange != nil {
		u.onChange(s.id)
	}
	return u.snapshot(s), nil
}

// Next advances one step. Blocked while the current step still has missing
// required fields.
func (u *WizardUseCase) Next(ctx context.Context, sessionID string) (WizardState, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return WizardState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step >= s.cfg.TotalSteps {
		return u.snapshot(s), ErrStepNotNavigable
	}
	if len(missingFor(s.meta, s.step)) > 0 {
		return u.snapshot(s), ErrStepIncomplete
	}
	s.step++
	if s.step > s.highestVisited {
		s.highestVisited = s.step
	}
	u.scheduleDraftSave(s)
	return u.snapshot(s), nil
}

// Prev moves back one step; never touches highestVisited.
func (u *WizardUseCase) Prev(ctx context.Context, sessionID string) (WizardState, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return WizardState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step <= 1 {
		return u.snapshot(s), ErrAlreadyFirstStep
	}
	s.step--
	u.scheduleDraftSave(s)
	return u.snapshot(s), nil
}

// JumpTo moves to an arbitrary navigable step (sidebar navigation).
// Non-navigable targets leave the session unchanged.
func (u *WizardUseCase) JumpTo(ctx context.Context, sessionID string, step int) (WizardState, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return WizardState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if step > s.cfg.TotalSteps || !form.Navigable(step, s.highestVisited) {
		return u.snapshot(s), ErrStepNotNavigable
	}
	s.step = step
	if s.step > s.highestVisited {
		s.highestVisited = s.step
	}
	u.scheduleDraftSave(s)
	return u.snapshot(s), nil
}

// Submit finalizes the session: full validation, mapping to the target
// record, insert, draft cleanup. On any failure the session is preserved
// untouched so the user can retry.
func (u *WizardUseCase) Submit(ctx context.Context, sessionID string) (SubmitResult, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SubmitResult{}, err
	}

	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return SubmitResult{}, ErrSubmitInFlight
	}
	if s.step != s.cfg.TotalSteps {
		s.mu.Unlock()
		return SubmitResult{}, ErrNotLastStep
	}
	if len(form.Check(s.values)) > 0 {
		s.mu.Unlock()
		return SubmitResult{}, ErrValuesInvalid
	}
	for _, m := range s.meta {
		if len(m.Missing) > 0 {
			s.mu.Unlock()
			return SubmitResult{}, ErrStepIncomplete
		}
	}
	s.submitting = true
	values := s.values.Clone()
	cfg := s.cfg
	ownerID := s.ownerID
	s.mu.Unlock()

	res, err := u.insertRecord(ctx, cfg, ownerID, values)

	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()

	if err != nil {
		return SubmitResult{}, err
	}

	// Success: the draft slot is cleared and the session ends.
	s.debouncer.Stop()
	if derr := u.draftRepo.Delete(ctx, draftKey(cfg.Kind, ownerID)); derr != nil {
		log.Printf("[wizard][usecase] draft delete after submit failed key=%s err=%v", draftKey(cfg.Kind, ownerID), derr)
	}
	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()

	return res, nil
}

// Close ends the session. A dirty session needs an explicit confirm; the
// last-saved draft stays on disk either way.
func (u *WizardUseCase) Close(ctx context.Context, sessionID string, confirm bool) (bool, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	dirty := s.dirty
	s.mu.Unlock()

	if dirty && !confirm {
		return false, ErrCloseNeedsConfirm
	}

	s.debouncer.Stop()
	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()
	return true, nil
}

// ClearDraft empties the persistent draft slot for one wizard kind.
func (u *WizardUseCase) ClearDraft(ctx context.Context, kind WizardKind, ownerID string) error {
	if _, ok := configFor(kind); !ok {
		return ErrUnknownWizardKind
	}
	if ownerID == "" {
		return ErrInvalidOwnerID
	}
	return u.draftRepo.Delete(ctx, draftKey(kind, ownerID))
}

func (u *WizardUseCase) session(id string) (*wizardSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// loadDraft reads the slot and applies the expiry window. Expired drafts
// are deleted on the spot. Draft failures are logged and swallowed: the
// wizard must start regardless.
func (u *WizardUseCase) loadDraft(ctx context.Context, cfg WizardConfig, ownerID string) (form.Draft, bool) {
	key := draftKey(cfg.Kind, ownerID)
	d, found, err := u.draftRepo.Get(ctx, key)
	if err != nil {
		log.Printf("[wizard][usecase] draft load failed key=%s err=%v", key, err)
		return form.Draft{}, false
	}
	if !found {
		return form.Draft{}, false
	}
	age := u.now().UnixMilli() - d.Timestamp
	if age > cfg.DraftTTL.Milliseconds() {
		if err := u.draftRepo.Delete(ctx, key); err != nil {
			log.Printf("[wizard][usecase] expired draft delete failed key=%s err=%v", key, err)
		}
		return form.Draft{}, false
	}
	return d, true
}

// scheduleDraftSave queues a debounced snapshot write. Only the trailing
// write of an edit burst lands, which is fine for an advisory draft.
// Callers hold s.mu.
func (u *WizardUseCase) scheduleDraftSave(s *wizardSession) {
	d := form.Draft{
		Values:         s.values.Clone(),
		Step:           s.step,
		HighestVisited: s.highestVisited,
		Timestamp:      u.now().UnixMilli(),
	}
	key := draftKey(s.cfg.Kind, s.ownerID)
	s.debouncer.Trigger(func() {
		// Detached from the request context: the write outlives it.
		if err := u.draftRepo.Put(context.Background(), key, d); err != nil {
			log.Printf("[wizard][usecase] draft save failed key=%s err=%v", key, err)
		}
	})
}

// snapshot builds the outward state. Callers hold s.mu (or the session is
// not yet shared).
func (u *WizardUseCase) snapshot(s *wizardSession) WizardState {
	st := WizardState{
		SessionID:      s.id,
		Kind:           s.cfg.Kind,
		OwnerID:        s.ownerID,
		Step:           s.step,
		HighestVisited: s.highestVisited,
		TotalSteps:     s.cfg.TotalSteps,
		Values:         s.values.Clone(),
		StepMeta:       s.meta,
		FieldErrors:    form.Check(s.values),
		Dirty:          s.dirty,
		DraftRestored:  s.restored,
	}
	if s.cfg.Kind == WizardKindInvoice {
		items, err := lineItemsFromInputs(s.values.Items)
		if err == nil {
			st.Totals = billing.ComputeTotals(items, s.values.TaxRate)
		}
	}
	return st
}

func missingFor(meta []form.StepMeta, step int) []string {
	for _, m := range meta {
		if m.Step == step {
			return m.Missing
		}
	}
	return nil
}

// lineItemsFromInputs parses the wizard's decimal strings into cents and
// derives every line total.
func lineItemsFromInputs(in []form.LineItemInput) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		price, err := billing.ParseAmount(it.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, entities.LineItem{
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: price,
		})
	}
	return billing.NormalizeItems(items)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
