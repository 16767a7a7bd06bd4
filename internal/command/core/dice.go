package core

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"chainbot/internal/command"
)

var (
	tokenRegex = regexp.MustCompile(`(?i)(\d*d\d+|\d+|[+\-*/])`)
	diceRegex  = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)
	validOps   = map[string]bool{"+": true, "-": true, "*": true, "/": true}
)

type term struct {
	value int
	op    string
}

func rollCommand() *command.Command {
	return &command.Command{
		Name:        "roll",
		Description: "Rolls dice like `2d20+1d6-2`",
		Category:    "🎲 Gameplay",
		Usage:       "roll <formula>",
		MinArgs:     1,
		MaxArgs:     command.Unbounded,
		ChainUsable: true,
		Run: func(ctx *command.Context) (string, error) {
			formula := strings.ReplaceAll(strings.Join(ctx.Args, ""), " ", "")
			total, err := evalFormula(formula, true)
			if err != nil {
				ctx.Event.Respond(fmt.Sprintf("Can't roll `%s`: %v", formula, err))
				return "", nil
			}
			return strconv.Itoa(total), nil
		},
	}
}

func calcCommand() *command.Command {
	return &command.Command{
		Name:        "calc",
		Description: "Evaluates integer math like `3+4*2`",
		Category:    "🎲 Gameplay",
		Usage:       "calc <expression>",
		MinArgs:     1,
		MaxArgs:     command.Unbounded,
		ChainUsable: true,
		Run: func(ctx *command.Context) (string, error) {
			expr := strings.ReplaceAll(strings.Join(ctx.Args, ""), " ", "")
			total, err := evalFormula(expr, false)
			if err != nil {
				ctx.Event.Respond(fmt.Sprintf("Can't evaluate `%s`: %v", expr, err))
				return "", nil
			}
			return strconv.Itoa(total), nil
		},
	}
}

// evalFormula evaluates a +-*/ expression over integers and, when allowDice
// is set, dice terms like 2d6. Multiplication and division bind tighter than
// addition and subtraction.
func evalFormula(formula string, allowDice bool) (int, error) {
	tokens := tokenRegex.FindAllString(formula, -1)
	if len(tokens) == 0 || strings.Join(tokens, "") != formula {
		return 0, fmt.Errorf("unparseable formula")
	}

	var terms []term
	currentOp := "+"
	for _, token := range tokens {
		if validOps[token] {
			currentOp = token
			continue
		}
		val, err := evaluateToken(token, allowDice)
		if err != nil {
			return 0, err
		}
		terms = append(terms, term{value: val, op: currentOp})
		currentOp = "+"
	}

	// Fold * and / into their left neighbor first.
	var merged []term
	for _, t := range terms {
		if t.op == "*" || t.op == "/" {
			if len(merged) == 0 {
				return 0, fmt.Errorf("can't multiply or divide by nothing")
			}
			prev := merged[len(merged)-1]
			merged = merged[:len(merged)-1]

			var newVal int
			switch t.op {
			case "*":
				newVal = prev.value * t.value
			case "/":
				if t.value == 0 {
					return 0, fmt.Errorf("can't divide by zero")
				}
				newVal = prev.value / t.value
			}
			merged = append(merged, term{value: newVal, op: prev.op})
		} else {
			merged = append(merged, t)
		}
	}

	total := 0
	for _, t := range merged {
		switch t.op {
		case "+":
			total += t.value
		case "-":
			total -= t.value
		default:
			return 0, fmt.Errorf("unknown operator: %s", t.op)
		}
	}
	return total, nil
}

func evaluateToken(token string, allowDice bool) (int, error) {
	if diceRegex.MatchString(token) {
		if !allowDice {
			return 0, fmt.Errorf("dice are not allowed here")
		}
		matches := diceRegex.FindStringSubmatch(token)
		countStr, sidesStr := matches[1], matches[2]

		count := 1
		if countStr != "" {
			n, err := strconv.Atoi(countStr)
			if err != nil {
				return 0, fmt.Errorf("invalid dice count")
			}
			count = n
		}

		sides, err := strconv.Atoi(sidesStr)
		if err != nil || sides < 2 {
			return 0, fmt.Errorf("invalid dice sides")
		}
		if count < 1 || count > 100 || sides > 1000 {
			return 0, fmt.Errorf("too big, max 100 dice with 1000 sides")
		}

		sum := 0
		for i := 0; i < count; i++ {
			sum += rand.Intn(sides) + 1
		}
		return sum, nil
	}

	val, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid number `%s`", token)
	}
	return val, nil
}
