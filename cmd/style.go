package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/showdown/domain/poker"
	"github.com/luca-patrignani/showdown/ledger"
)

func suitSymbol(s poker.Suit) string {
	switch s {
	case poker.Club:
		return "♣"
	case poker.Diamond:
		return pterm.LightRed("♦")
	case poker.Heart:
		return pterm.LightRed("♥")
	case poker.Spade:
		return "♠"
	}
	return "?"
}

// formatHand renders card tokens with suit symbols. Tokens that do not parse
// are shown as given.
func formatHand(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		c, err := poker.ParseCard(token)
		if err != nil {
			parts[i] = token
			continue
		}
		parts[i] = strings.TrimSuffix(c.String(), c.Suit().Letter()) + suitSymbol(c.Suit())
	}
	return strings.Join(parts, " ")
}

func formatResult(o poker.Outcome) string {
	switch o.Winner {
	case poker.Black:
		return pterm.LightCyan(o.String())
	case poker.White:
		return pterm.LightGreen(o.String())
	}
	return pterm.LightYellow(o.String())
}

func getMatchPanel(e entry, o poker.Outcome) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("Black: %s  [%s]", formatHand(e.match.Black), o.BlackCategory)
	body += pterm.Sprintfln("White: %s  [%s]", formatHand(e.match.White), o.WhiteCategory)
	body += formatResult(o)
	if o.Divergent() {
		body += "\n" + pterm.LightMagenta(fmt.Sprintf("standard rules: %s", standardVerdict(o.Standard)))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|" + e.source + "|")).WithTitleTopCenter().Sprint(body)}
}

func standardVerdict(s poker.Side) string {
	if s == poker.NoSide {
		return "TIE"
	}
	return s.String() + " WINS"
}

func getErrorPanel(e entry, err error) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("Black: %s", formatHand(e.match.Black))
	body += pterm.Sprintfln("White: %s", formatHand(e.match.White))
	body += pterm.LightRed(err.Error())
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightRed("|" + e.source + "|")).WithTitleTopCenter().Sprint(body)}
}

// printResults renders one panel per match, two per row.
func printResults(entries []entry, results []poker.Result) {
	var rows [][]pterm.Panel
	for i, res := range results {
		var panel pterm.Panel
		if res.Err != nil {
			panel = getErrorPanel(entries[i], res.Err)
		} else {
			panel = getMatchPanel(entries[i], res.Outcome)
		}
		if i%2 == 0 {
			rows = append(rows, []pterm.Panel{})
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], panel)
	}
	pterm.DefaultPanel.WithPanels(rows).Render()
}

// summaryData counts the results by winner.
func summaryData(results []poker.Result) pterm.TableData {
	counts := map[string]int{}
	for _, res := range results {
		switch {
		case res.Err != nil:
			counts["FAILED"]++
		case res.Outcome.IsTie():
			counts["TIE"]++
		default:
			counts[res.Outcome.Winner.String()]++
		}
	}
	data := pterm.TableData{{"Black", "White", "Tie", "Failed"}}
	data = append(data, []string{
		strconv.Itoa(counts["BLACK"]),
		strconv.Itoa(counts["WHITE"]),
		strconv.Itoa(counts["TIE"]),
		strconv.Itoa(counts["FAILED"]),
	})
	return data
}

func ledgerData(blocks []ledger.Block) pterm.TableData {
	data := pterm.TableData{{"#", "Match", "Result", "Hash", "Signed"}}
	for _, b := range blocks {
		signed := "no"
		if len(b.Signature) > 0 {
			signed = "yes"
		}
		data = append(data, []string{
			strconv.Itoa(b.Index),
			b.Record.MatchID,
			b.Record.Result,
			b.Hash[:12],
			signed,
		})
	}
	return data
}
