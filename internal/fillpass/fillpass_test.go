// internal/fillpass/fillpass_test.go

package fillpass

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
	"github.com/xkilldash9x/formpilot-cli/internal/config"
	"github.com/xkilldash9x/formpilot-cli/internal/generate"
	"github.com/xkilldash9x/formpilot-cli/internal/mocks"
)

const surveyHTML = `<html><body><form>
	<label for="name">Full Name</label>
	<input type="text" id="name" name="fullName">
	<label for="email">Email Address</label>
	<input type="email" id="email" name="email">
	<label for="feedback">Your Feedback</label>
	<textarea id="feedback" name="feedback"></textarea>
	<input type="password" id="pw" name="password">
</form></body></html>`

const emptyHTML = `<html><body><p>Nothing to fill here.</p></body></html>`

func testFiller(t *testing.T, cfg *config.Config, store schemas.ProfileStore, opts ...Option) *Filler {
	t.Helper()
	gen := generate.New(zap.NewNop(), generate.WithRand(rand.New(rand.NewSource(1))))
	opts = append([]Option{WithGenerator(gen)}, opts...)
	return New(cfg, store, zap.NewNop(), opts...)
}

func filledResult() json.RawMessage {
	return json.RawMessage(`{"status":"filled"}`)
}

func TestRun_RandomMode(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Navigate", mock.Anything, "https://example.com/survey").Return(nil).Once()
	page.On("Snapshot", mock.Anything).Return(surveyHTML, nil).Once()
	page.On("ExecuteScript", mock.Anything, mock.Anything, mock.Anything).
		Return(filledResult(), nil).Times(3)

	notifier := &mocks.MockNotifier{}
	notifier.On("FillCompleted", mock.Anything).Once()

	f := testFiller(t, config.NewDefaultConfig(), nil, WithNotifier(notifier))
	report, err := f.Run(context.Background(), page, "https://example.com/survey")

	require.NoError(t, err)
	assert.Equal(t, 3, report.Attempted, "password field must be excluded")
	assert.Equal(t, 3, report.Succeeded)
	assert.Zero(t, report.Failed)
	assert.NotEmpty(t, report.PassID)
	page.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRun_NoFieldsFound(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
	page.On("Snapshot", mock.Anything).Return(emptyHTML, nil).Once()

	notifier := &mocks.MockNotifier{}
	notifier.On("FillFailed", "https://example.com/empty", ErrNoFieldsFound).Once()

	f := testFiller(t, config.NewDefaultConfig(), nil, WithNotifier(notifier))
	_, err := f.Run(context.Background(), page, "https://example.com/empty")

	assert.ErrorIs(t, err, ErrNoFieldsFound)
	notifier.AssertExpectations(t)
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
	page.On("Snapshot", mock.Anything).Return(surveyHTML, nil).Once()
	// No ExecuteScript expectation: a dry run must never reach the page.

	cfg := config.NewDefaultConfig()
	cfg.SetFillerDryRun(true)

	f := testFiller(t, cfg, nil)
	report, err := f.Run(context.Background(), page, "https://example.com/survey")

	require.NoError(t, err)
	require.Equal(t, 3, report.Attempted)
	for _, o := range report.Outcomes {
		assert.Equal(t, schemas.OutcomePlanned, o.Status)
		assert.NotEmpty(t, o.Value)
	}
	page.AssertExpectations(t)
}

func TestRun_ProfileMode(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
	page.On("Snapshot", mock.Anything).Return(surveyHTML, nil).Once()

	var injected []string
	page.On("ExecuteScript", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			scriptArgs := args.Get(2).([]interface{})
			injected = append(injected, scriptArgs[2].(string))
		}).
		Return(filledResult(), nil).Times(3)

	store := &mocks.MockProfileStore{}
	store.On("ActiveProfile", mock.Anything).Return(&schemas.Profile{
		ID:          "p1",
		DisplayName: "Work",
		Name:        "Jordan Reyes",
		Email:       "jordan@example.com",
	}, nil).Once()

	cfg := config.NewDefaultConfig()
	cfg.SetFillerMode(ModeProfile)

	f := testFiller(t, cfg, store)
	report, err := f.Run(context.Background(), page, "https://example.com/survey")

	require.NoError(t, err)
	assert.Equal(t, 3, report.Succeeded)
	assert.Contains(t, injected, "Jordan Reyes")
	assert.Contains(t, injected, "jordan@example.com")
	store.AssertExpectations(t)
}

func TestRun_ProfileModeRejectsEmptyProfile(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
	page.On("Snapshot", mock.Anything).Return(surveyHTML, nil).Once()

	store := &mocks.MockProfileStore{}
	store.On("ActiveProfile", mock.Anything).Return(&schemas.Profile{
		ID:          "p1",
		DisplayName: "Empty",
	}, nil).Once()

	cfg := config.NewDefaultConfig()
	cfg.SetFillerMode(ModeProfile)

	f := testFiller(t, cfg, store)
	_, err := f.Run(context.Background(), page, "https://example.com/survey")

	assert.ErrorIs(t, err, ErrNoProfileData)
}

func TestRun_MaxFieldsCap(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
	page.On("Snapshot", mock.Anything).Return(surveyHTML, nil).Once()
	page.On("ExecuteScript", mock.Anything, mock.Anything, mock.Anything).
		Return(filledResult(), nil).Times(2)

	cfg := config.NewDefaultConfig()
	cfg.FillerCfg.MaxFields = 2

	f := testFiller(t, cfg, nil)
	report, err := f.Run(context.Background(), page, "https://example.com/survey")

	require.NoError(t, err)
	assert.Equal(t, 2, report.Attempted)
	page.AssertExpectations(t)
}

func TestRun_FieldFailureDoesNotAbortPass(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
	page.On("Snapshot", mock.Anything).Return(surveyHTML, nil).Once()
	page.On("ExecuteScript", mock.Anything, mock.Anything, mock.Anything).
		Return(json.RawMessage(`{"status":"failed","reason":"element_not_found"}`), nil).Once()
	page.On("ExecuteScript", mock.Anything, mock.Anything, mock.Anything).
		Return(filledResult(), nil).Times(2)

	f := testFiller(t, config.NewDefaultConfig(), nil)
	report, err := f.Run(context.Background(), page, "https://example.com/survey")

	require.NoError(t, err)
	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, schemas.ReasonElementNotFound, report.Outcomes[0].Reason)
}

func TestRun_UnknownMode(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Navigate", mock.Anything, mock.Anything).Return(nil).Once()
	page.On("Snapshot", mock.Anything).Return(surveyHTML, nil).Once()

	cfg := config.NewDefaultConfig()
	cfg.SetFillerMode("chaotic")

	f := testFiller(t, cfg, nil)
	_, err := f.Run(context.Background(), page, "https://example.com/survey")
	assert.ErrorContains(t, err, "unknown fill mode")
}

func TestExtract_Standalone(t *testing.T) {
	page := &mocks.MockPageContext{}
	page.On("Snapshot", mock.Anything).Return(surveyHTML, nil).Once()

	f := testFiller(t, config.NewDefaultConfig(), nil)
	fields, err := f.Extract(context.Background(), page, "")

	require.NoError(t, err)
	require.Len(t, fields, 3)
	locators := make([]string, 0, len(fields))
	for _, fld := range fields {
		locators = append(locators, fld.Locator)
	}
	assert.ElementsMatch(t, []string{"#name", "#email", "#feedback"}, locators)
}
