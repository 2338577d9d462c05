package attendance

import "strings"

// CommandKind is the closed set of commands the bot understands. Parsing is
// separated from dispatch so the dispatcher can switch exhaustively instead
// of matching strings inline.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandBind
	CommandCheckIn
	CommandCheckOut
	CommandStatus
)

const (
	keywordBind      = "員工綁定"
	keywordCheckIn   = "打卡上班"
	keywordCheckIn2  = "上班打卡"
	keywordCheckOut  = "打卡下班"
	keywordCheckOut2 = "下班打卡"
	keywordStatus    = "查詢打卡"
)

// Command is a parsed inbound text. AuthCode and Name are only populated for
// CommandBind, and stay empty when the bind text has too few tokens.
type Command struct {
	Kind     CommandKind
	AuthCode string
	Name     string
}

// ParseCommand maps trimmed message text to a command. Matching is exact and
// case-sensitive: the bind keyword is a prefix match, everything else is full
// equality. Anything unrecognized parses to CommandUnknown.
func ParseCommand(text string) Command {
	trimmed := strings.TrimSpace(text)

	switch trimmed {
	case keywordCheckIn, keywordCheckIn2:
		return Command{Kind: CommandCheckIn}
	case keywordCheckOut, keywordCheckOut2:
		return Command{Kind: CommandCheckOut}
	case keywordStatus:
		return Command{Kind: CommandStatus}
	}

	if strings.HasPrefix(trimmed, keywordBind) {
		cmd := Command{Kind: CommandBind}
		// 員工綁定 <auth code> <display name...>
		parts := strings.Fields(trimmed)
		if len(parts) >= 3 {
			cmd.AuthCode = parts[1]
			cmd.Name = strings.Join(parts[2:], " ")
		}
		return cmd
	}

	return Command{Kind: CommandUnknown}
}
