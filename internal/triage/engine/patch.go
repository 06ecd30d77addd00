package engine

import "engagement-srv/internal/model"

// Patch is a partial update of an interaction. Nil fields are left untouched.
// Tags are added (deduplicated), not replaced; RemoveTags deletes by name.
type Patch struct {
	Status     *model.InteractionStatus
	Sentiment  *model.Sentiment
	Priority   *model.Priority
	AssignedTo *string
	AddTags    []string
	RemoveTags []string
	ReplyCount *int
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Status == nil && p.Sentiment == nil && p.Priority == nil &&
		p.AssignedTo == nil && len(p.AddTags) == 0 && len(p.RemoveTags) == 0 &&
		p.ReplyCount == nil
}

// Apply merges the patch into a copy of the interaction and returns it.
// Tag addition is idempotent: adding an existing tag is a no-op.
func (p Patch) Apply(in model.Interaction) model.Interaction {
	out := in
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Sentiment != nil {
		out.Sentiment = *p.Sentiment
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.AssignedTo != nil {
		out.AssignedTo = *p.AssignedTo
	}
	if p.ReplyCount != nil {
		out.ReplyCount = *p.ReplyCount
	}

	if len(p.AddTags) > 0 || len(p.RemoveTags) > 0 {
		tags := make([]string, 0, len(in.Tags)+len(p.AddTags))
		removed := make(map[string]bool, len(p.RemoveTags))
		for _, t := range p.RemoveTags {
			removed[t] = true
		}
		seen := make(map[string]bool, len(in.Tags)+len(p.AddTags))
		for _, t := range in.Tags {
			if removed[t] || seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
		for _, t := range p.AddTags {
			if removed[t] || seen[t] {
				continue
			}
			seen[t] = true
			tags = append(tags, t)
		}
		out.Tags = tags
	}

	return out
}
