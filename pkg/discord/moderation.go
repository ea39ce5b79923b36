// Package discord provides member resolution and role hierarchy checks
// shared by the moderation commands.
package discord

import (
	"github.com/bwmarrin/discordgo"
)

// ResolveMember looks up a guild member, preferring the state cache and
// falling back to the REST API. Returns nil when the user is not a member.
func ResolveMember(s *discordgo.Session, guildID, userID string) *discordgo.Member {
	member, err := s.State.Member(guildID, userID)
	if err == nil && member != nil {
		return member
	}

	member, err = s.GuildMember(guildID, userID)
	if err != nil {
		return nil
	}
	return member
}

// CanActOn reports whether the bot outranks the target member: the guild
// owner is untouchable, and otherwise the bot's highest role must sit
// strictly above the target's highest role. This is the kickable /
// bannable / moderatable check.
func CanActOn(s *discordgo.Session, guildID string, target *discordgo.Member) bool {
	if target == nil {
		return false
	}

	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		return false
	}

	if guild.OwnerID == target.User.ID {
		return false
	}

	botUser := s.State.User
	if botUser == nil {
		return false
	}
	if target.User.ID == botUser.ID {
		return false
	}

	bot := ResolveMember(s, guildID, botUser.ID)
	if bot == nil {
		return false
	}

	return highestRolePosition(guild, bot.Roles) > highestRolePosition(guild, target.Roles)
}

// highestRolePosition returns the position of the highest role in roleIDs.
// The implicit @everyone role sits at position 0, so no roles means -1
// only in degenerate guild states; everyone else starts at 0.
func highestRolePosition(guild *discordgo.Guild, roleIDs []string) int {
	highest := 0
	for _, roleID := range roleIDs {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Position > highest {
				highest = role.Position
			}
		}
	}
	return highest
}
