package command

// Menu returns the static command overview.
func (s *Service) Menu() Reply {
	return Reply{Embed: &Embed{
		Title:       "🤖 UsTwoBot Control Panel",
		Description: "Here is everything I can do for you two!",
		Color:       colorMenu,
		Fields: []EmbedField{
			{
				Name:  "📸 **Memories**",
				Value: "`/log [text]` (or attach image) - Save a memory\n`/remember` - View a random memory",
			},
			{
				Name:  "💡 **Date Night**",
				Value: "`/date [Category] [Idea]` - Add a new idea\n`/pick [Category]` - Randomly choose a date",
			},
			{
				Name:  "❤️ **Fun & Utils**",
				Value: "`/milestone [YYYY-MM-DD] [Name]` - Set a big date\n`/days` - See countdowns to milestones",
			},
			{
				Name:  "🌐 **Web**",
				Value: "`/view_dates` - Link to every date idea\n`/view_memories` - Link to the scrapbook",
			},
		},
		Footer: "Built by Shas",
	}}
}
