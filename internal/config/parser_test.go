package config

import (
	"errors"
	"testing"
)

func parseStr(t *testing.T, in string) *Config {
	t.Helper()
	cfg, err := Parse("test", []byte(in))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", in, err)
	}
	return cfg
}

func TestParseEmpty(t *testing.T) {
	cfg := parseStr(t, "")
	if cfg.Waittime != DefaultWaittime {
		t.Errorf("expected default waittime %d, got %d", DefaultWaittime, cfg.Waittime)
	}
	if len(cfg.Hosts) != 0 || cfg.Layout != nil {
		t.Errorf("empty input should yield an all-defaults config, got %+v", cfg)
	}
}

func TestParseWaittime(t *testing.T) {
	cfg := parseStr(t, "waittime 120 ;")
	if cfg.Waittime != 120 {
		t.Errorf("expected waittime 120, got %d", cfg.Waittime)
	}

	cfg = parseStr(t, "waittime 15 ;")
	if cfg.Waittime != 15 {
		t.Errorf("expected waittime 15, got %d", cfg.Waittime)
	}
}

func TestParseWaittimeInvalid(t *testing.T) {
	for _, in := range []string{
		"waittime 14 ;",
		"waittime 0 ;",
		"waittime -5 ;",
		"waittime abc ;",
		"waittime 99999999999999999999 ;",
	} {
		_, err := Parse("test", []byte(in))
		var nerr *NumberError
		if !errors.As(err, &nerr) {
			t.Errorf("Parse(%q) = %v, want NumberError", in, err)
		}
	}
}

func TestParseServers(t *testing.T) {
	cfg := parseStr(t, "servers a b c ;")
	if len(cfg.Hosts) != 3 {
		t.Fatalf("expected 3 hosts, got %d", len(cfg.Hosts))
	}
	for i, want := range []string{"a", "b", "c"} {
		if cfg.Hosts[i].URL != want {
			t.Errorf("host %d = %q, want %q", i, cfg.Hosts[i].URL, want)
		}
		if cfg.Hosts[i].Waittime != 0 {
			t.Errorf("host %d waittime = %d, want 0 (inherit)", i, cfg.Hosts[i].Waittime)
		}
	}
}

func TestParseServersDuplicatesPreserved(t *testing.T) {
	cfg := parseStr(t, "servers a a ;")
	if len(cfg.Hosts) != 2 {
		t.Errorf("duplicate URLs must be preserved, got %d hosts", len(cfg.Hosts))
	}
}

func TestParseServersWaittimeBlock(t *testing.T) {
	cfg := parseStr(t, "servers a b { waittime 30 ; } ; servers c ;")
	if len(cfg.Hosts) != 3 {
		t.Fatalf("expected 3 hosts, got %d", len(cfg.Hosts))
	}
	if cfg.Hosts[0].Waittime != 30 || cfg.Hosts[1].Waittime != 30 {
		t.Errorf("block waittime must apply to both hosts of its statement, got %d/%d",
			cfg.Hosts[0].Waittime, cfg.Hosts[1].Waittime)
	}
	if cfg.Hosts[2].Waittime != 0 {
		t.Errorf("host from a later statement must stay at 0, got %d", cfg.Hosts[2].Waittime)
	}
}

func TestParseServersWaittimeScopedToStatement(t *testing.T) {
	cfg := parseStr(t, "servers a ; servers b c { waittime 20 ; } ;")
	if cfg.Hosts[0].Waittime != 0 {
		t.Errorf("host from an earlier statement must stay at 0, got %d", cfg.Hosts[0].Waittime)
	}
	if cfg.Hosts[1].Waittime != 20 || cfg.Hosts[2].Waittime != 20 {
		t.Errorf("expected waittime 20 on b and c, got %d/%d",
			cfg.Hosts[1].Waittime, cfg.Hosts[2].Waittime)
	}
}

func TestParseServersLastWaittimeWins(t *testing.T) {
	cfg := parseStr(t, "servers a { waittime 30 ; waittime 45 ; } ;")
	if cfg.Hosts[0].Waittime != 45 {
		t.Errorf("expected the last waittime in the block to win, got %d", cfg.Hosts[0].Waittime)
	}
}

func TestParseServersEmptyBlock(t *testing.T) {
	cfg := parseStr(t, "servers a { } ;")
	if cfg.Hosts[0].Waittime != 0 {
		t.Errorf("empty block must not set a waittime, got %d", cfg.Hosts[0].Waittime)
	}
}

func TestParseServersEmpty(t *testing.T) {
	for _, in := range []string{"servers ;", "servers { } ;"} {
		_, err := Parse("test", []byte(in))
		if !errors.Is(err, ErrEmptyServerList) {
			t.Errorf("Parse(%q) = %v, want ErrEmptyServerList", in, err)
		}
	}
}

func TestParseServersBadBlockToken(t *testing.T) {
	_, err := Parse("test", []byte("servers a { bogus ; } ;"))
	var uerr *UnknownTokenError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownTokenError, got %v", err)
	}
	if uerr.Found != "bogus" {
		t.Errorf("expected offending token \"bogus\", got %q", uerr.Found)
	}
}

func TestParseServersBadWaittime(t *testing.T) {
	_, err := Parse("test", []byte("servers a { waittime 5 ; } ;"))
	var nerr *NumberError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NumberError, got %v", err)
	}
	if nerr.Field != "server waittime" {
		t.Errorf("expected field \"server waittime\", got %q", nerr.Field)
	}
}

func TestParseLayoutEmpty(t *testing.T) {
	cfg := parseStr(t, "layout { } ;")
	if cfg.Layout != nil {
		t.Errorf("an empty layout block must leave Layout unset, got %+v", cfg.Layout)
	}
}

func TestParseLayout(t *testing.T) {
	cfg := parseStr(t, "layout { header ; errlog 5 ; host { cpu hour day ; } } ;")
	lay := cfg.Layout
	if lay == nil {
		t.Fatal("expected a layout")
	}
	if !lay.Header {
		t.Error("expected header = true")
	}
	if lay.Errlog != 5 {
		t.Errorf("expected errlog 5, got %d", lay.Errlog)
	}
	if len(lay.Boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(lay.Boxes))
	}
	box := lay.Boxes[0]
	if box.Cat != CatCPU {
		t.Errorf("expected category cpu, got %v", box.Cat)
	}
	if box.Args != ArgHour|ArgDay {
		t.Errorf("expected exactly hour|day, got %#x", box.Args)
	}
}

func TestParseLayoutDuplicate(t *testing.T) {
	_, err := Parse("test", []byte("layout { header ; } ; layout { header ; } ;"))
	if !errors.Is(err, ErrDuplicateLayout) {
		t.Errorf("expected ErrDuplicateLayout, got %v", err)
	}
}

func TestParseLayoutEmptyThenReal(t *testing.T) {
	// An empty layout block allocates nothing, so it does not count
	// toward the one-layout limit.
	cfg := parseStr(t, "layout { } ; layout { header ; } ;")
	if cfg.Layout == nil || !cfg.Layout.Header {
		t.Errorf("expected the non-empty layout to apply, got %+v", cfg.Layout)
	}
}

func TestParseLayoutBoxOrder(t *testing.T) {
	cfg := parseStr(t, "layout { host { cpu ; mem ; net } } ;")
	lay := cfg.Layout
	if len(lay.Boxes) != 3 {
		t.Fatalf("expected 3 boxes, got %d", len(lay.Boxes))
	}
	want := []Category{CatCPU, CatMem, CatNet}
	for i, cat := range want {
		if lay.Boxes[i].Cat != cat {
			t.Errorf("box %d category = %v, want %v", i, lay.Boxes[i].Cat, cat)
		}
	}
}

func TestParseLayoutAllCategories(t *testing.T) {
	in := "layout { host { cpu qmin_bars ; mem qmin ; net min ; disc hour ; " +
		"link ip state access ; host ; nprocs day ; rprocs week ; nfiles year } } ;"
	cfg := parseStr(t, in)
	boxes := cfg.Layout.Boxes
	if len(boxes) != 9 {
		t.Fatalf("expected 9 boxes, got %d", len(boxes))
	}
	checks := []struct {
		cat  Category
		args Arg
	}{
		{CatCPU, ArgQminBars},
		{CatMem, ArgQmin},
		{CatNet, ArgMin},
		{CatDisc, ArgHour},
		{CatLink, ArgIP | ArgState | ArgAccess},
		{CatHost, ArgAccess},
		{CatProcs, ArgDay},
		{CatRProcs, ArgWeek},
		{CatFiles, ArgYear},
	}
	for i, want := range checks {
		if boxes[i].Cat != want.cat {
			t.Errorf("box %d category = %v, want %v", i, boxes[i].Cat, want.cat)
		}
		if boxes[i].Args != want.args {
			t.Errorf("box %d args = %#x, want %#x", i, boxes[i].Args, want.args)
		}
	}
}

func TestParseLayoutHostCategoryImplicitAccess(t *testing.T) {
	cfg := parseStr(t, "layout { host { host } } ;")
	box := cfg.Layout.Boxes[0]
	if box.Cat != CatHost || box.Args != ArgAccess {
		t.Errorf("host box must carry the access flag implicitly, got %+v", box)
	}
}

func TestParseLayoutRepeatedOptions(t *testing.T) {
	cfg := parseStr(t, "layout { host { cpu hour hour hour ; } } ;")
	if cfg.Layout.Boxes[0].Args != ArgHour {
		t.Errorf("repeated options must be idempotent, got %#x", cfg.Layout.Boxes[0].Args)
	}
}

func TestParseLayoutUnknownTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bogus category", "layout { host { bogus ; } } ;"},
		{"bogus layout keyword", "layout { widget ; } ;"},
		{"option from wrong category", "layout { host { net qmin_bars ; } } ;"},
		{"link with time option", "layout { host { link hour ; } } ;"},
		{"host category with option", "layout { host { host ip ; } } ;"},
		{"cpu with link option", "layout { host { cpu ip ; } } ;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", []byte(tt.in))
			var uerr *UnknownTokenError
			if !errors.As(err, &uerr) {
				t.Errorf("Parse(%q) = %v, want UnknownTokenError", tt.in, err)
			}
		})
	}
}

func TestParseLayoutBadErrlog(t *testing.T) {
	for _, in := range []string{
		"layout { errlog -1 ; } ;",
		"layout { errlog many ; } ;",
	} {
		_, err := Parse("test", []byte(in))
		var nerr *NumberError
		if !errors.As(err, &nerr) {
			t.Errorf("Parse(%q) = %v, want NumberError", in, err)
		}
	}
}

func TestParseUnknownStatement(t *testing.T) {
	_, err := Parse("test", []byte("frobnicate ;"))
	var uerr *UnknownTokenError
	if !errors.As(err, &uerr) {
		t.Errorf("expected UnknownTokenError, got %v", err)
	}
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := Parse("test", []byte("waittime 60 ; garbage"))
	if err == nil {
		t.Error("trailing garbage after a complete statement must fail")
	}
}

func TestParseMissingSemicolon(t *testing.T) {
	_, err := Parse("test", []byte("waittime 60"))
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}

	_, err = Parse("test", []byte("layout { header ; } waittime 60 ;"))
	var terr *TokenError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TokenError, got %v", err)
	}
	if terr.Expected != ";" {
		t.Errorf("expected missing \";\", got expected=%q", terr.Expected)
	}
}

func TestParseTruncatedInputs(t *testing.T) {
	// Every prefix of a valid configuration must either parse or fail
	// cleanly; none may panic.
	full := "waittime 30 ; servers a b { waittime 45 ; } ; " +
		"layout { header ; errlog 2 ; host { cpu qmin hour ; link ip state ; host } } ;"
	for i := 0; i <= len(full); i++ {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Parse panicked on prefix %q: %v", full[:i], r)
				}
			}()
			Parse("test", []byte(full[:i]))
		}()
	}
}

func TestParseFullConfig(t *testing.T) {
	in := `
waittime 30 ;

servers alpha.example.com beta.example.com {
	waittime 120 ;
} ;

servers gamma.example.com ;

layout {
	header ;
	errlog 3 ;
	host {
		host ;
		cpu qmin hour day ;
		mem qmin ;
		net qmin ;
		link ip state access
	}
} ;
`
	cfg := parseStr(t, in)
	if cfg.Waittime != 30 {
		t.Errorf("waittime = %d, want 30", cfg.Waittime)
	}
	if len(cfg.Hosts) != 3 {
		t.Fatalf("expected 3 hosts, got %d", len(cfg.Hosts))
	}
	if cfg.Hosts[0].Waittime != 120 || cfg.Hosts[1].Waittime != 120 {
		t.Error("block waittime not applied to first statement's hosts")
	}
	if cfg.Hosts[2].Waittime != 0 {
		t.Error("third host must inherit the global waittime")
	}
	if cfg.Layout == nil || len(cfg.Layout.Boxes) != 5 {
		t.Fatalf("expected a 5-box layout, got %+v", cfg.Layout)
	}
	if !cfg.Layout.Header || cfg.Layout.Errlog != 3 {
		t.Errorf("layout header/errlog = %v/%d, want true/3",
			cfg.Layout.Header, cfg.Layout.Errlog)
	}
}
