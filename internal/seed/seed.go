package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"supervisor-backend/internal/sessions"
	"supervisor-backend/internal/supervisors"
)

// Apply populates the repos with the demo dataset: one supervisor, four
// fellows, four groups, and ten completed sessions awaiting analysis. Two
// sessions contain explicit risk language.
func Apply(ctx context.Context, supervisorRepo supervisors.Repo, sessionRepo sessions.Repo) error {
	supervisor := supervisors.Supervisor{
		ID:        uuid.NewString(),
		Name:      "Dr. Njeri",
		Email:     "njeri.supervisor@example.com",
		Tier:      "Tier 2",
		CreatedAt: time.Now().UTC(),
	}
	if err := supervisorRepo.Create(ctx, supervisor); err != nil {
		return fmt.Errorf("seed supervisor: %w", err)
	}

	fellowNames := []string{"Amina", "Brian", "Chipo", "David"}
	fellows := make([]sessions.Fellow, 0, len(fellowNames))
	groups := make([]sessions.Group, 0, len(fellowNames))
	for i, name := range fellowNames {
		fellow := sessions.Fellow{ID: uuid.NewString(), Name: name}
		if err := sessionRepo.CreateFellow(ctx, fellow); err != nil {
			return fmt.Errorf("seed fellow %s: %w", name, err)
		}
		fellows = append(fellows, fellow)

		group := sessions.Group{
			ID:           uuid.NewString(),
			Code:         fmt.Sprintf("GM-%d", 100+i),
			FellowID:     fellow.ID,
			SupervisorID: supervisor.ID,
		}
		if err := sessionRepo.CreateGroup(ctx, group); err != nil {
			return fmt.Errorf("seed group %s: %w", group.Code, err)
		}
		groups = append(groups, group)
	}

	now := time.Now().UTC()
	for i := 0; i < 10; i++ {
		fellow := fellows[i%len(fellows)]
		group := groups[i%len(groups)]

		includeRisk := i == 2 || i == 7
		strength := CoverageStrong
		switch i % 3 {
		case 1:
			strength = CoveragePartial
		case 2:
			strength = CoverageMissed
		}

		completedAt := now.Add(-time.Duration(i) * 24 * time.Hour)
		session := sessions.Session{
			ID:           uuid.NewString(),
			FellowID:     fellow.ID,
			FellowName:   fellow.Name,
			GroupID:      group.ID,
			GroupCode:    group.Code,
			SupervisorID: supervisor.ID,
			ScheduledAt:  completedAt.Add(-time.Hour),
			CompletedAt:  completedAt,
			Transcript:   BuildTranscript(TranscriptOptions{IncludeRisk: includeRisk, Strength: strength}),
			Status:       sessions.StatusAwaitingAnalysis,
		}
		if err := sessionRepo.Create(ctx, session); err != nil {
			return fmt.Errorf("seed session %d: %w", i, err)
		}
	}
	return nil
}
