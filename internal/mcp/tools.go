package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// activeSession is the singleton match session (one per stdio process).
var activeSession *MatchSession

// decksFile is the path to the decks YAML file, set by main.
var decksFile string

// SetDecksFile sets the path to the decks YAML file.
func SetDecksFile(path string) {
	decksFile = path
}

// RegisterTools adds all match tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startMatchTool(), handleStartMatch)
	s.AddTool(takeActionTool(), handleTakeAction)
	s.AddTool(concedeMatchTool(), handleConcedeMatch)
	s.AddTool(getMatchStateTool(), handleGetMatchState)
}

// --- Tool definitions ---

func startMatchTool() mcp.Tool {
	return mcp.NewTool("start_match",
		mcp.WithDescription("Start a new skirmish match against the built-in bot. "+
			"Returns the opening state and the first pending action list."),
		mcp.WithNumber("your_deck", mcp.Required(), mcp.Description("Your deck number (1-indexed from decks.yaml)")),
		mcp.WithNumber("bot_deck", mcp.Required(), mcp.Description("The bot's deck number (1-indexed from decks.yaml)")),
		mcp.WithNumber("your_seat", mcp.Description("Which seat you take: 0 = goes first (default), 1 = goes second")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Choose an action from the pending action list by index. "+
			"Returns the events it caused and the next pending decision."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into the actions list")),
	)
}

func concedeMatchTool() mcp.Tool {
	return mcp.NewTool("concede_match",
		mcp.WithDescription("Forfeit the running match."),
	)
}

func getMatchStateTool() mcp.Tool {
	return mcp.NewTool("get_match_state",
		mcp.WithDescription("Get the current match state, buffered events and pending action list without acting. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A match is already running. Only one match at a time is supported."), nil
	}

	yourDeck := request.GetInt("your_deck", 0)
	botDeck := request.GetInt("bot_deck", 0)
	seat := request.GetInt("your_seat", 0)

	if yourDeck < 1 || botDeck < 1 {
		return mcp.NewToolResultError("your_deck and bot_deck must be >= 1"), nil
	}
	if seat != 0 && seat != 1 {
		return mcp.NewToolResultError("your_seat must be 0 or 1"), nil
	}

	sess, err := NewMatchSession(decksFile, yourDeck, botDeck, seat)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start match: %v", err), nil
	}
	activeSession = sess

	resp := sess.waitForPending()
	if resp.MatchOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}
	pending := sess.currentPending
	if pending == nil || pending.Type != DecisionChooseAction {
		return mcp.NewToolResultError("No pending action decision."), nil
	}

	index := request.GetInt("index", -1)
	if index < 0 || index >= len(pending.Actions) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be 0-%d.", index, len(pending.Actions)-1), nil
	}

	sess.agentCtrl.responseCh <- ActionResponse{Index: index}

	resp := sess.waitForPending()
	if resp.MatchOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleConcedeMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}
	pending := sess.currentPending
	if pending == nil || pending.Type != DecisionChooseAction {
		return mcp.NewToolResultError("No pending action decision to concede from."), nil
	}

	sess.agentCtrl.responseCh <- ActionResponse{Concede: true}

	resp := sess.waitForPending()
	if resp.MatchOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetMatchState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No match is running. Use start_match first."), nil
	}

	sess.mu.Lock()
	over := sess.over
	winner := sess.winner
	result := sess.result
	sess.mu.Unlock()

	resp := &ToolResponse{
		Events:    sess.drainEvents(),
		MatchOver: over,
		Winner:    winner,
		Result:    result,
	}
	if pending := sess.currentPending; pending != nil {
		resp.State = pending.State
		resp.Actions = pending.Actions
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
