package onboarding

import "time"

const (
	StepConnectChannel   = "connect_channel"
	StepFirstTriage      = "first_triage"
	StepFirstResponse    = "first_response"
	StepEnableAutomation = "enable_automation"
)

// Steps lists every onboarding step in display order.
var Steps = []string{
	StepConnectChannel,
	StepFirstTriage,
	StepFirstResponse,
	StepEnableAutomation,
}

type StepStatus struct {
	Step        string
	Completed   bool
	CompletedAt *time.Time
}

type StatusOutput struct {
	Steps     []StepStatus
	Completed bool
}

type CompleteStepInput struct {
	Step string
}
