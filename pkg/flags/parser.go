package flags

import (
	"strconv"
	"strings"
)

// Usage is the one-line synopsis of the accepted command line.
const Usage = "minigrep [-i|--ignore-case] [--no-ignore-case] [-n|--line-number] [-m N|--max-count N] [--] <query> <filename>"

// Parse folds tokens into ParsedArguments starting from the zero Options.
// The program name must already be stripped from tokens.
func Parse(tokens []string) (ParsedArguments, error) {
	return ParseWith(Options{}, tokens)
}

// ParseWith folds tokens into ParsedArguments starting from base, so flags
// override whatever defaults base carries. Later flags override earlier ones;
// --no-ignore-case after --ignore-case (or the reverse) is not an error.
//
// A bare "--" ends option parsing: every later token is positional, even one
// starting with "-". A lone "-" is an empty cluster and sets nothing.
//
// Positionals are not validated here; see ParsedArguments.Invocation.
func ParseWith(base Options, tokens []string) (ParsedArguments, error) {
	parsed := ParsedArguments{Options: base}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		rest := tokens[i+1:]

		var (
			consumed int
			err      error
		)

		switch {
		case token == "--":
			parsed.Positionals = append(parsed.Positionals, rest...)
			return parsed, nil
		case strings.HasPrefix(token, "--"):
			consumed, err = parsed.applyLong(token[2:], rest)
		case strings.HasPrefix(token, "-"):
			consumed, err = parsed.applyCluster(token[1:], rest)
		default:
			parsed.Positionals = append(parsed.Positionals, token)
		}

		if err != nil {
			return ParsedArguments{}, err
		}
		i += consumed
	}

	return parsed, nil
}

// applyCluster handles the characters of a short-flag cluster such as "in"
// or "nm5". It returns how many following tokens were consumed.
func (p *ParsedArguments) applyCluster(cluster string, rest []string) (int, error) {
	for j, r := range cluster {
		switch r {
		case 'i':
			p.Options.IgnoreCase = true
		case 'n':
			p.Options.ShowLineNumber = true
		case 'm':
			// The rest of the cluster is the value; nothing after 'm' is
			// read as a flag.
			if value := cluster[j+1:]; value != "" {
				n, err := parseMaxCount("-m", value)
				if err != nil {
					return 0, err
				}
				p.Options.MaxCount = n
				return 0, nil
			}
			return p.takeMaxCount("-m", rest)
		default:
			return 0, &ParseError{Kind: UnknownOption, Option: "-" + string(r)}
		}
	}
	return 0, nil
}

// applyLong handles a long flag body (the token without its leading "--").
func (p *ParsedArguments) applyLong(body string, rest []string) (int, error) {
	name, value, hasValue := strings.Cut(body, "=")
	option := "--" + name

	switch name {
	case "ignore-case", "no-ignore-case", "line-number":
		if hasValue {
			return 0, &ParseError{Kind: UnexpectedValue, Option: option, Value: value}
		}
	}

	switch name {
	case "ignore-case":
		p.Options.IgnoreCase = true
	case "no-ignore-case":
		p.Options.IgnoreCase = false
	case "line-number":
		p.Options.ShowLineNumber = true
	case "max-count":
		if hasValue {
			n, err := parseMaxCount(option, value)
			if err != nil {
				return 0, err
			}
			p.Options.MaxCount = n
			return 0, nil
		}
		return p.takeMaxCount(option, rest)
	default:
		return 0, &ParseError{Kind: UnknownOption, Option: option}
	}
	return 0, nil
}

// takeMaxCount consumes the next whole token as the max-count value.
func (p *ParsedArguments) takeMaxCount(option string, rest []string) (int, error) {
	if len(rest) == 0 {
		return 0, &ParseError{Kind: InvalidMaxCount, Option: option}
	}
	n, err := parseMaxCount(option, rest[0])
	if err != nil {
		return 0, err
	}
	p.Options.MaxCount = n
	return 1, nil
}

func parseMaxCount(option, value string) (uint, error) {
	n, err := strconv.ParseUint(value, 10, strconv.IntSize)
	if err != nil {
		return 0, &ParseError{Kind: InvalidMaxCount, Option: option, Value: value}
	}
	return uint(n), nil
}
