package lifecycle_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casechain/backend/internal/config"
	"casechain/backend/internal/lifecycle"
	"casechain/backend/internal/models"
	"casechain/backend/internal/reward"
	"casechain/backend/internal/storage"
)

var (
	investigator  = models.Identity{ID: "investigator1", Name: "John Investigator", Role: config.RoleInvestigator}
	investigator2 = models.Identity{ID: "investigator2", Name: "Jane Investigator", Role: config.RoleInvestigator}
	manager       = models.Identity{ID: "manager1", Name: "John Manager", Role: config.RoleManagement}
)

func newEngine(t *testing.T, balance string) (*lifecycle.Service, *storage.MemoryStore, *reward.Ledger, *RecordingPublisher) {
	t.Helper()
	store := storage.NewMemoryStore()
	initial, err := decimal.NewFromString(balance)
	require.NoError(t, err)
	ledger := reward.NewLedger(initial)
	pub := &RecordingPublisher{}
	return lifecycle.NewService(store, ledger, pub), store, ledger, pub
}

func submitReport(t *testing.T, engine *lifecycle.Service) *models.Report {
	t.Helper()
	report, err := engine.SubmitReport(lifecycle.SubmitInput{
		Title:        "Procurement fraud in vendor onboarding",
		Description:  "Invoices approved without delivery confirmation.",
		Anonymous:    true,
		Criticality:  4,
		RewardWallet: "0xWALLET",
	})
	require.NoError(t, err)
	require.NotNil(t, report)
	return report
}

// advanceToComplete walks a fresh report to investigation_complete.
func advanceToComplete(t *testing.T, engine *lifecycle.Service) *models.Report {
	t.Helper()
	report := submitReport(t, engine)
	_, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)
	_, err = engine.AddManagementSummary(report.ID, investigator, "Findings confirmed the allegation.")
	require.NoError(t, err)
	updated, err := engine.CompleteInvestigation(report.ID, investigator)
	require.NoError(t, err)
	return updated
}

// advanceToClosed walks a fresh report to completed with permanent closure.
func advanceToClosed(t *testing.T, engine *lifecycle.Service) *models.Report {
	t.Helper()
	report := advanceToComplete(t, engine)
	closed, err := engine.PermanentlyClose(report.ID, manager, "Case resolved, disciplinary action taken.")
	require.NoError(t, err)
	return closed
}

func TestSubmitReport(t *testing.T) {
	engine, _, _, pub := newEngine(t, "1000")

	report, err := engine.SubmitReport(lifecycle.SubmitInput{
		Title:       "Expense padding",
		Description: "Recurring inflated travel claims.",
		Submitter:   "jane.doe",
		Anonymous:   false,
		Criticality: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, config.StatusPending, report.Status)
	assert.Equal(t, "jane.doe", report.Submitter)
	assert.Equal(t, 2, report.Criticality)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, models.MaskID(report.ID), report.MaskedID)
	assert.False(t, report.Date.IsZero())

	events := pub.EventsOfType(config.EventNewReport)
	require.Len(t, events, 1)
	assert.Equal(t, models.BroadcastChannel, events[0].Channel)
	assert.Equal(t, report.MaskedID, events[0].Event.Payload["maskedId"])
}

func TestSubmitReport_AnonymousStripsSubmitter(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")

	report, err := engine.SubmitReport(lifecycle.SubmitInput{
		Title:     "Anonymous tip",
		Submitter: "should-be-discarded",
		Anonymous: true,
	})
	require.NoError(t, err)
	assert.Empty(t, report.Submitter)
	assert.True(t, report.Anonymous)
}

func TestSubmitReport_ClampsCriticality(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")

	for _, c := range []int{0, -3, 6, 100} {
		report, err := engine.SubmitReport(lifecycle.SubmitInput{Title: "t", Criticality: c})
		require.NoError(t, err)
		assert.Equal(t, config.DefaultCriticality, report.Criticality, "criticality %d should clamp to default", c)
	}
}

func TestSubmitReport_RequiresContent(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")

	_, err := engine.SubmitReport(lifecycle.SubmitInput{Anonymous: true})
	assert.ErrorIs(t, err, lifecycle.ErrValidation)
}

func TestSubmitReport_VoiceNoteOnlyIsEnough(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")

	report, err := engine.SubmitReport(lifecycle.SubmitInput{VoiceNote: "/uploads/voice/abc.webm"})
	require.NoError(t, err)
	assert.True(t, report.HasVoiceNote)
}

func TestGetReport_NotFound(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")

	_, err := engine.GetReport("no-such-id")
	assert.ErrorIs(t, err, lifecycle.ErrReportNotFound)
}

func TestAssignReport(t *testing.T) {
	engine, _, _, pub := newEngine(t, "1000")
	report := submitReport(t, engine)

	updated, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)

	assert.Equal(t, config.StatusUnderInvestigation, updated.Status)
	assert.Equal(t, investigator.ID, updated.AssignedTo)
	assert.Equal(t, investigator.Name, updated.AssignedToName)

	events := pub.EventsOfType(config.EventStatusChanged)
	require.Len(t, events, 1)
	assert.Equal(t, models.ReportChannel(report.ID), events[0].Channel)
}

func TestAssignReport_OnlyFromPending(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)

	_, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)

	_, err = engine.AssignReport(report.ID, investigator2)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)

	var transitionErr *lifecycle.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, config.StatusUnderInvestigation, transitionErr.From)
}

func TestAssignReport_RequiresInvestigatorRole(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)

	_, err := engine.AssignReport(report.ID, manager)
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)
}

func TestAssignReport_NotFound(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")

	_, err := engine.AssignReport("missing", investigator)
	assert.ErrorIs(t, err, lifecycle.ErrReportNotFound)
}

func TestAddManagementSummary(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)
	_, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)

	updated, err := engine.AddManagementSummary(report.ID, investigator, "Initial findings.")
	require.NoError(t, err)
	assert.Equal(t, "Initial findings.", updated.ManagementSummary)

	// Overwriting is allowed while still under investigation.
	updated, err = engine.AddManagementSummary(report.ID, investigator, "Revised findings.")
	require.NoError(t, err)
	assert.Equal(t, "Revised findings.", updated.ManagementSummary)
}

func TestAddManagementSummary_OnlyAssignee(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)
	_, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)

	_, err = engine.AddManagementSummary(report.ID, investigator2, "Drive-by summary.")
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)
}

func TestAddManagementSummary_RejectsEmpty(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)
	_, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)

	_, err = engine.AddManagementSummary(report.ID, investigator, "")
	assert.ErrorIs(t, err, lifecycle.ErrValidation)
}

func TestCompleteInvestigation_RequiresSummary(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)
	_, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)

	_, err = engine.CompleteInvestigation(report.ID, investigator)
	assert.ErrorIs(t, err, lifecycle.ErrPreconditionFailed)

	var summaryErr *lifecycle.ManagementSummaryRequiredError
	assert.ErrorAs(t, err, &summaryErr)

	// The failed attempt must not have moved the report.
	current, err := engine.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, config.StatusUnderInvestigation, current.Status)
}

func TestCompleteInvestigation(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	updated := advanceToComplete(t, engine)

	assert.Equal(t, config.StatusInvestigationComplete, updated.Status)
	assert.Equal(t, investigator.ID, updated.AssignedTo)
}

func TestCompleteInvestigation_OnlyAssignee(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)
	_, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)
	_, err = engine.AddManagementSummary(report.ID, investigator, "Done.")
	require.NoError(t, err)

	_, err = engine.CompleteInvestigation(report.ID, investigator2)
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)
}

func TestPermanentlyClose(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToComplete(t, engine)

	closed, err := engine.PermanentlyClose(report.ID, manager, "Resolved and sanctioned.")
	require.NoError(t, err)

	assert.Equal(t, config.StatusCompleted, closed.Status)
	assert.True(t, closed.PermanentlyClosed)
	assert.Equal(t, "Resolved and sanctioned.", closed.ClosureSummary)
}

func TestPermanentlyClose_RequiresClosureSummary(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToComplete(t, engine)

	_, err := engine.PermanentlyClose(report.ID, manager, "")
	assert.ErrorIs(t, err, lifecycle.ErrPreconditionFailed)
}

func TestPermanentlyClose_OnlyFromInvestigationComplete(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)

	_, err := engine.PermanentlyClose(report.ID, manager, "Too early.")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
}

func TestPermanentlyClose_RequiresManagementRole(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToComplete(t, engine)

	_, err := engine.PermanentlyClose(report.ID, investigator, "Investigator closing.")
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)
}

func TestProcessReward(t *testing.T) {
	engine, _, ledger, pub := newEngine(t, "1000")
	report := advanceToClosed(t, engine)

	amount := decimal.NewFromInt(250)
	updated, err := engine.ProcessReward(report.ID, manager, "Payout for confirmed fraud case", amount)
	require.NoError(t, err)

	assert.True(t, updated.RewardProcessed)
	assert.True(t, amount.Equal(updated.RewardAmount))
	assert.True(t, decimal.NewFromInt(750).Equal(ledger.Balance()))

	events := pub.EventsOfType(config.EventRewardProcessed)
	require.Len(t, events, 1)
}

func TestProcessReward_OneShot(t *testing.T) {
	engine, _, ledger, _ := newEngine(t, "1000")
	report := advanceToClosed(t, engine)

	amount := decimal.NewFromInt(100)
	_, err := engine.ProcessReward(report.ID, manager, "first", amount)
	require.NoError(t, err)

	_, err = engine.ProcessReward(report.ID, manager, "second", amount)
	assert.ErrorIs(t, err, lifecycle.ErrAlreadyProcessed)

	// Only the first payout may touch the balance.
	assert.True(t, decimal.NewFromInt(900).Equal(ledger.Balance()))
}

func TestProcessReward_ConcurrentRequestsPayOnce(t *testing.T) {
	engine, _, ledger, _ := newEngine(t, "1000")
	report := advanceToClosed(t, engine)

	amount := decimal.NewFromInt(50)
	const attempts = 20

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.ProcessReward(report.ID, manager, "race", amount)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, lifecycle.ErrAlreadyProcessed)
		}
	}
	assert.Equal(t, 1, successes)
	assert.True(t, decimal.NewFromInt(950).Equal(ledger.Balance()))
}

func TestProcessReward_RequiresPermanentClosure(t *testing.T) {
	engine, _, ledger, _ := newEngine(t, "1000")
	report := advanceToComplete(t, engine)

	_, err := engine.ProcessReward(report.ID, manager, "early", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
	assert.True(t, decimal.NewFromInt(1000).Equal(ledger.Balance()))
}

func TestProcessReward_RequiresWallet(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")

	report, err := engine.SubmitReport(lifecycle.SubmitInput{Title: "No wallet case", Anonymous: true})
	require.NoError(t, err)
	_, err = engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)
	_, err = engine.AddManagementSummary(report.ID, investigator, "Summary.")
	require.NoError(t, err)
	_, err = engine.CompleteInvestigation(report.ID, investigator)
	require.NoError(t, err)
	_, err = engine.PermanentlyClose(report.ID, manager, "Closed.")
	require.NoError(t, err)

	_, err = engine.ProcessReward(report.ID, manager, "no wallet", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, lifecycle.ErrPreconditionFailed)
}

func TestProcessReward_InsufficientFundsLeavesReportUntouched(t *testing.T) {
	engine, _, ledger, _ := newEngine(t, "100")
	report := advanceToClosed(t, engine)

	_, err := engine.ProcessReward(report.ID, manager, "too big", decimal.NewFromInt(500))
	assert.ErrorIs(t, err, reward.ErrInsufficientFunds)

	current, err := engine.GetReport(report.ID)
	require.NoError(t, err)
	assert.False(t, current.RewardProcessed)
	assert.True(t, decimal.NewFromInt(100).Equal(ledger.Balance()))
}

func TestProcessReward_RejectsNonPositiveAmount(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToClosed(t, engine)

	_, err := engine.ProcessReward(report.ID, manager, "zero", decimal.Zero)
	assert.ErrorIs(t, err, lifecycle.ErrValidation)

	_, err = engine.ProcessReward(report.ID, manager, "negative", decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, lifecycle.ErrValidation)
}

func TestReopen(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToComplete(t, engine)

	reopened, err := engine.Reopen(report.ID, manager, "New evidence surfaced")
	require.NoError(t, err)

	assert.Equal(t, config.StatusPending, reopened.Status)
	assert.True(t, reopened.IsReopened)
	assert.Equal(t, []string{"New evidence surfaced"}, []string(reopened.ReopenReasons))
	assert.Equal(t, investigator.ID, reopened.PreviousInvestigator)
	assert.Empty(t, reopened.AssignedTo)
	assert.Empty(t, reopened.AssignedToName)
}

func TestReopen_PreviousInvestigatorBarred(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToComplete(t, engine)

	_, err := engine.Reopen(report.ID, manager, "Second look needed")
	require.NoError(t, err)

	_, err = engine.AssignReport(report.ID, investigator)
	assert.ErrorIs(t, err, lifecycle.ErrForbidden)

	var ineligibleErr *lifecycle.IneligibleInvestigatorError
	assert.ErrorAs(t, err, &ineligibleErr)

	// A different investigator may take it.
	updated, err := engine.AssignReport(report.ID, investigator2)
	require.NoError(t, err)
	assert.Equal(t, investigator2.ID, updated.AssignedTo)
}

func TestReopen_RequiresReason(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToComplete(t, engine)

	_, err := engine.Reopen(report.ID, manager, "")
	assert.ErrorIs(t, err, lifecycle.ErrPreconditionFailed)
}

func TestReopen_BlockedWhenPermanentlyClosed(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToClosed(t, engine)

	_, err := engine.Reopen(report.ID, manager, "Trying anyway")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
}

func TestReopen_OnlyFromTerminalStatuses(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)

	_, err := engine.Reopen(report.ID, manager, "Still pending")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidTransition)
}

func TestReopen_AccumulatesReasons(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := advanceToComplete(t, engine)

	_, err := engine.Reopen(report.ID, manager, "First reason")
	require.NoError(t, err)

	_, err = engine.AssignReport(report.ID, investigator2)
	require.NoError(t, err)
	_, err = engine.AddManagementSummary(report.ID, investigator2, "Second pass summary.")
	require.NoError(t, err)
	_, err = engine.CompleteInvestigation(report.ID, investigator2)
	require.NoError(t, err)

	reopened, err := engine.Reopen(report.ID, manager, "Second reason")
	require.NoError(t, err)

	assert.Equal(t, []string{"First reason", "Second reason"}, []string(reopened.ReopenReasons))
	assert.Equal(t, investigator2.ID, reopened.PreviousInvestigator)
}

func TestSendChatMessage(t *testing.T) {
	engine, _, _, pub := newEngine(t, "1000")
	report := submitReport(t, engine)

	message, err := engine.SendChatMessage(report.ID, models.Anonymous.ID, "Any update on my report?", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, message.ID)
	assert.Equal(t, report.ID, message.ReportID)
	assert.False(t, message.Read)
	assert.False(t, message.Timestamp.IsZero())

	current, err := engine.GetReport(report.ID)
	require.NoError(t, err)
	require.Len(t, current.ChatHistory, 1)
	assert.Equal(t, "Any update on my report?", current.ChatHistory[0].Content)

	events := pub.EventsOfType(config.EventNewMessage)
	require.Len(t, events, 1)
	assert.Equal(t, models.ReportChannel(report.ID), events[0].Channel)
}

func TestSendChatMessage_AttachmentOnly(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)

	attachment := &models.Attachment{Name: "ledger.xlsx", Path: "/uploads/ledger.xlsx"}
	message, err := engine.SendChatMessage(report.ID, investigator.ID, "", attachment)
	require.NoError(t, err)

	assert.True(t, message.HasAttachment)
	assert.Equal(t, "ledger.xlsx", message.AttachmentName)
}

func TestSendChatMessage_RejectsEmpty(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)

	_, err := engine.SendChatMessage(report.ID, investigator.ID, "", nil)
	assert.ErrorIs(t, err, lifecycle.ErrValidation)

	_, err = engine.SendChatMessage(report.ID, "", "hello", nil)
	assert.ErrorIs(t, err, lifecycle.ErrValidation)
}

func TestSendChatMessage_NotFound(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")

	_, err := engine.SendChatMessage("missing", investigator.ID, "hello", nil)
	assert.ErrorIs(t, err, lifecycle.ErrReportNotFound)
}

func TestMarkMessagesAsRead(t *testing.T) {
	engine, _, _, _ := newEngine(t, "1000")
	report := submitReport(t, engine)

	_, err := engine.SendChatMessage(report.ID, models.Anonymous.ID, "first", nil)
	require.NoError(t, err)
	_, err = engine.SendChatMessage(report.ID, investigator.ID, "second", nil)
	require.NoError(t, err)
	_, err = engine.SendChatMessage(report.ID, models.Anonymous.ID, "third", nil)
	require.NoError(t, err)

	updated, err := engine.MarkMessagesAsRead(report.ID, investigator.ID)
	require.NoError(t, err)

	require.Len(t, updated.ChatHistory, 3)
	assert.True(t, updated.ChatHistory[0].Read, "other party's message becomes read")
	assert.False(t, updated.ChatHistory[1].Read, "reader's own message stays unread")
	assert.True(t, updated.ChatHistory[2].Read)

	// Idempotent: a second pass changes nothing.
	again, err := engine.MarkMessagesAsRead(report.ID, investigator.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.ChatHistory, again.ChatHistory)
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	store := storage.NewMemoryStore()
	ledger := reward.NewLedger(decimal.NewFromInt(1000))
	pub := &RecordingPublisher{FailWith: errors.New("redis down")}
	engine := lifecycle.NewService(store, ledger, pub)

	report, err := engine.SubmitReport(lifecycle.SubmitInput{Title: "tip", Anonymous: true})
	require.NoError(t, err)

	stored, err := engine.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, config.StatusPending, stored.Status)
}

// TestFullCaseLifecycle walks one report through submission, investigation,
// reopening, re-investigation, permanent closure and reward settlement.
func TestFullCaseLifecycle(t *testing.T) {
	engine, _, ledger, _ := newEngine(t, "1000")

	report := submitReport(t, engine)

	_, err := engine.AssignReport(report.ID, investigator)
	require.NoError(t, err)
	_, err = engine.SendChatMessage(report.ID, investigator.ID, "Can you share the invoice numbers?", nil)
	require.NoError(t, err)
	_, err = engine.SendChatMessage(report.ID, models.Anonymous.ID, "INV-2041 through INV-2050.", nil)
	require.NoError(t, err)
	_, err = engine.AddManagementSummary(report.ID, investigator, "Invoices confirmed fraudulent.")
	require.NoError(t, err)
	_, err = engine.CompleteInvestigation(report.ID, investigator)
	require.NoError(t, err)

	_, err = engine.Reopen(report.ID, manager, "Scope widened to second vendor")
	require.NoError(t, err)

	_, err = engine.AssignReport(report.ID, investigator2)
	require.NoError(t, err)
	_, err = engine.AddManagementSummary(report.ID, investigator2, "Second vendor cleared, original findings stand.")
	require.NoError(t, err)
	_, err = engine.CompleteInvestigation(report.ID, investigator2)
	require.NoError(t, err)

	closed, err := engine.PermanentlyClose(report.ID, manager, "Both vendors reviewed, case closed.")
	require.NoError(t, err)
	assert.True(t, closed.PermanentlyClosed)

	rewarded, err := engine.ProcessReward(report.ID, manager, "Whistleblower payout", decimal.NewFromInt(300))
	require.NoError(t, err)

	assert.True(t, rewarded.RewardProcessed)
	assert.True(t, decimal.NewFromInt(700).Equal(ledger.Balance()))
	assert.Len(t, rewarded.ChatHistory, 2)
	assert.Equal(t, []string{"Scope widened to second vendor"}, []string(rewarded.ReopenReasons))
}
