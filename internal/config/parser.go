package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Parse parses the configuration language from buf. src names the source
// for diagnostics. The returned Config is nil whenever err is non-nil;
// nothing built before a failure is visible to the caller.
func Parse(src string, buf []byte) (*Config, error) {
	cfg := New()
	c := &cursor{src: src, toks: Tokenize(buf)}
	for !c.atEnd() {
		switch {
		case c.equalsAdvance("servers"):
			if err := parseServers(c, cfg); err != nil {
				return nil, err
			}
		case c.equalsAdvance("layout"):
			if err := parseLayout(c, cfg); err != nil {
				return nil, err
			}
		case c.equalsAdvance("waittime"):
			if err := parseWaittime(c, cfg); err != nil {
				return nil, err
			}
		default:
			return nil, c.unknown()
		}
	}
	return cfg, nil
}

// ParseFile reads and parses the configuration at path. A missing file is
// not an error: the fallback host list is used instead, and an empty
// fallback yields an all-defaults Config. When the file parses and a
// non-empty fallback was also given, the fallback hosts replace the file's
// servers wholesale; a layout from the file is kept either way.
func ParseFile(path string, fallback []string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FromHosts(fallback), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(path, buf)
	if err != nil {
		return nil, err
	}
	if len(fallback) > 0 {
		cfg.Hosts = FromHosts(fallback).Hosts
	}
	return cfg, nil
}

// parseNum parses a numeric field constrained to [min, max], mirroring
// strtonum's failure reasons.
func parseNum(src, field, raw string, min, max int) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		reason := "invalid"
		if errors.Is(err, strconv.ErrRange) {
			reason = "too large"
		}
		return 0, &NumberError{Src: src, Field: field, Raw: raw, Reason: reason}
	}
	if n < min {
		return 0, &NumberError{Src: src, Field: field, Raw: raw, Reason: "too small"}
	}
	if n > max {
		return 0, &NumberError{Src: src, Field: field, Raw: raw, Reason: "too large"}
	}
	return n, nil
}

// "waittime" num ";"
func parseWaittime(c *cursor, cfg *Config) error {
	tok, err := c.current()
	if err != nil {
		return err
	}
	n, err := parseNum(c.src, "global waittime", tok, MinWaittime, math.MaxInt)
	if err != nil {
		return err
	}
	cfg.Waittime = n
	if err := c.advance(); err != nil {
		return err
	}
	return c.expectAdvance(";")
}

// "servers" url+ ("{" server-args "}")? ";"
func parseServers(c *cursor, cfg *Config) error {
	count := 0
	for !c.atEnd() && !c.equals(";") && !c.equals("{") {
		cfg.Hosts = append(cfg.Hosts, HostEntry{URL: c.toks[c.pos]})
		c.pos++
		count++
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", c.src, ErrEmptyServerList)
	}
	if _, err := c.current(); err != nil {
		return err
	}
	if c.equalsAdvance("{") {
		if err := parseServerArgs(c, cfg, count); err != nil {
			return err
		}
	}
	return c.expectAdvance(";")
}

// server-args: ("waittime" num (";")?)* before the closing "}". The last
// waittime seen, if any, is applied retroactively to the count hosts
// collected by the enclosing servers statement only, not to hosts from
// earlier statements.
func parseServerArgs(c *cursor, cfg *Config, count int) error {
	waittime := 0
	for !c.atEnd() && !c.equals("}") {
		if !c.equalsAdvance("waittime") {
			return c.unknown()
		}
		tok, err := c.current()
		if err != nil {
			return err
		}
		n, err := parseNum(c.src, "server waittime", tok, MinWaittime, math.MaxInt)
		if err != nil {
			return err
		}
		waittime = n
		if err := c.advance(); err != nil {
			return err
		}
		c.equalsAdvance(";")
	}
	if err := c.expectAdvance("}"); err != nil {
		return err
	}
	if waittime == 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		cfg.Hosts[len(cfg.Hosts)-1-i].Waittime = waittime
	}
	return nil
}

// "layout" "{" layout-body? "}" ";"
func parseLayout(c *cursor, cfg *Config) error {
	if err := c.expectAdvance("{"); err != nil {
		return err
	}
	if _, err := c.current(); err != nil {
		return err
	}
	if c.equalsAdvance("}") {
		// An empty block is the same as omitting the statement.
		return c.expectAdvance(";")
	}
	if cfg.Layout != nil {
		return fmt.Errorf("%s: %w", c.src, ErrDuplicateLayout)
	}
	cfg.Layout = &Layout{}
	for !c.atEnd() {
		switch {
		case c.equalsAdvance("header"):
			cfg.Layout.Header = true
		case c.equalsAdvance("errlog"):
			tok, err := c.current()
			if err != nil {
				return err
			}
			n, err := parseNum(c.src, "layout errlog", tok, 0, math.MaxInt)
			if err != nil {
				return err
			}
			cfg.Layout.Errlog = n
			if err := c.advance(); err != nil {
				return err
			}
		case c.equalsAdvance("host"):
			if err := parseLayoutHost(c, cfg.Layout); err != nil {
				return err
			}
		default:
			return c.unknown()
		}
		if c.atEnd() || c.equals("}") {
			break
		}
		if err := c.expectAdvance(";"); err != nil {
			return err
		}
		if c.atEnd() || c.equals("}") {
			break
		}
	}
	if err := c.expectAdvance("}"); err != nil {
		return err
	}
	return c.expectAdvance(";")
}

// "host" "{" box* "}": the per-box widget list. Boxes are ";"-separated;
// the separator may be omitted before the closing "}".
func parseLayoutHost(c *cursor, lay *Layout) error {
	if err := c.expectAdvance("{"); err != nil {
		return err
	}
	for {
		tok, err := c.current()
		if err != nil {
			return err
		}
		if tok == "}" {
			break
		}
		box, err := parseBox(c)
		if err != nil {
			return err
		}
		lay.Boxes = append(lay.Boxes, box)
		if tok, err = c.current(); err != nil {
			return err
		}
		if tok == "}" {
			break
		}
		if err := c.expectAdvance(";"); err != nil {
			return err
		}
	}
	return c.expectAdvance("}")
}

// argWord maps an option keyword to its flag.
type argWord struct {
	word string
	flag Arg
}

// Option vocabularies. cpu, mem, nprocs, rprocs, and nfiles share the full
// time-window set; net and disc lack qmin_bars; link has its own; the host
// category takes no options at all.
var (
	timeBarArgs = []argWord{
		{"qmin_bars", ArgQminBars},
		{"qmin", ArgQmin},
		{"min", ArgMin},
		{"hour", ArgHour},
		{"day", ArgDay},
		{"week", ArgWeek},
		{"year", ArgYear},
	}
	timeArgs = timeBarArgs[1:]
	linkArgs = []argWord{
		{"ip", ArgIP},
		{"state", ArgState},
		{"access", ArgAccess},
	}
)

var categories = []struct {
	word string
	cat  Category
	args []argWord
}{
	{"cpu", CatCPU, timeBarArgs},
	{"mem", CatMem, timeBarArgs},
	{"net", CatNet, timeArgs},
	{"disc", CatDisc, timeArgs},
	{"link", CatLink, linkArgs},
	{"host", CatHost, nil},
	{"nprocs", CatProcs, timeBarArgs},
	{"rprocs", CatRProcs, timeBarArgs},
	{"nfiles", CatFiles, timeBarArgs},
}

// parseBox consumes one category keyword and its option list, leaving the
// cursor on the ";" or "}" that ended it. The host category takes no
// options and always carries the access flag.
func parseBox(c *cursor) (DrawBox, error) {
	for _, cat := range categories {
		if !c.equalsAdvance(cat.word) {
			continue
		}
		box := DrawBox{Cat: cat.cat}
		if cat.cat == CatHost {
			box.Args = ArgAccess
		}
		if err := parseBoxArgs(c, &box, cat.args); err != nil {
			return DrawBox{}, err
		}
		return box, nil
	}
	return DrawBox{}, c.unknown()
}

// parseBoxArgs accumulates option flags until the box's ";" or "}".
// Repeating an option is harmless; an option outside the category's
// vocabulary is a hard error.
func parseBoxArgs(c *cursor, box *DrawBox, args []argWord) error {
	for !c.atEnd() {
		if c.equals(";") || c.equals("}") {
			return nil
		}
		matched := false
		for _, a := range args {
			if c.equalsAdvance(a.word) {
				box.Args |= a.flag
				matched = true
				break
			}
		}
		if !matched {
			return c.unknown()
		}
	}
	return fmt.Errorf("%s: %w", c.src, ErrUnexpectedEOF)
}
