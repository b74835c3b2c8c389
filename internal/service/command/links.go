package command

import (
	"context"
	"fmt"
)

// ViewDates hands out a private link to the guild's date idea list.
func (s *Service) ViewDates(ctx context.Context) (Reply, error) {
	tenant, err := tenantFromCtx(ctx)
	if err != nil {
		return Reply{}, err
	}
	url := fmt.Sprintf("%s/guilds/%s/dates", s.publicURL, tenant)
	return Reply{Text: "📋 **Here is your full list of date ideas:**\n" + url, Ephemeral: true}, nil
}

// ViewMemories hands out a private link to the guild's scrapbook.
func (s *Service) ViewMemories(ctx context.Context) (Reply, error) {
	tenant, err := tenantFromCtx(ctx)
	if err != nil {
		return Reply{}, err
	}
	url := fmt.Sprintf("%s/guilds/%s/memories", s.publicURL, tenant)
	return Reply{Text: "📸 **Here is your digital scrapbook:**\n" + url, Ephemeral: true}, nil
}
