package parser

import (
	"github.com/holocm/rcc/internal/ast"
	"github.com/holocm/rcc/internal/lexer"
	"github.com/holocm/rcc/internal/token"
)

// predefinedControlClasses maps the non-CONTROL control keywords to their
// implicit window class name, per spec §4.5.
var predefinedControlClasses = map[string]string{
	"AUTO3STATE":     "BUTTON",
	"AUTOCHECKBOX":   "BUTTON",
	"AUTORADIOBUTTON": "BUTTON",
	"CHECKBOX":       "BUTTON",
	"DEFPUSHBUTTON":  "BUTTON",
	"GROUPBOX":       "BUTTON",
	"PUSHBOX":        "BUTTON",
	"PUSHBUTTON":     "BUTTON",
	"RADIOBUTTON":    "BUTTON",
	"STATE3":         "BUTTON",
	"USERBUTTON":     "BUTTON",
	"COMBOBOX":       "COMBOBOX",
	"EDITTEXT":       "EDIT",
	"BEDIT":          "EDIT",
	"HEDIT":          "EDIT",
	"IEDIT":          "EDIT",
	"LISTBOX":        "LISTBOX",
	"SCROLLBAR":      "SCROLLBAR",
	"CTEXT":          "STATIC",
	"ICON":           "STATIC",
	"LTEXT":          "STATIC",
	"RTEXT":          "STATIC",
}

// parseDialog parses "DIALOG|DIALOGEX x, y, w, h [, helpid] <statements>
// BEGIN <controls> END" (spec §4.5/§6).
func (p *Parser) parseDialog(header ast.CommonHeader, isEx bool) (*ast.Dialog, error) {
	coords, err := p.parseCommaSeparatedExprs(4, 4)
	if err != nil {
		return nil, err
	}
	dlg := &ast.Dialog{Header: header, IsEx: isEx, X: coords[0], Y: coords[1], W: coords[2], H: coords[3]}
	if isEx && p.peek(lexer.Normal).Kind == token.Comma {
		p.next(lexer.Normal)
		helpID, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		dlg.HelpID = helpID
	}

	dlg.Header.Attrs = p.parseAttributes()
	if p.peekKeyword("LANGUAGE") {
		lang, err := p.parseLanguageStmt()
		if err != nil {
			return nil, err
		}
		dlg.Header.Language = lang
	}

	for {
		t := p.peek(lexer.WhitespaceDelimiterOnly)
		switch {
		case t.Is("CAPTION"):
			p.next(lexer.WhitespaceDelimiterOnly)
			text, err := p.parseQuotedText()
			if err != nil {
				return nil, err
			}
			dlg.Caption = text
			dlg.HasCaption = true
		case t.Is("CLASS"):
			p.next(lexer.WhitespaceDelimiterOnly)
			ct, err := p.parseControlText()
			if err != nil {
				return nil, err
			}
			dlg.ClassVal = ct
		case t.Is("MENU"):
			p.next(lexer.WhitespaceDelimiterOnly)
			ct, err := p.parseControlText()
			if err != nil {
				return nil, err
			}
			dlg.MenuVal = ct
		case t.Is("FONT"):
			p.next(lexer.WhitespaceDelimiterOnly)
			size, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			dlg.FontSize = size
			dlg.HasFont = true
			if isEx && p.peek(lexer.Normal).Kind == token.Comma {
				p.next(lexer.Normal)
				name, err := p.parseQuotedText()
				if err != nil {
					return nil, err
				}
				dlg.FontName = name
				if p.peek(lexer.Normal).Kind == token.Comma {
					p.next(lexer.Normal)
					w, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					dlg.FontWeight = w
				}
				if p.peek(lexer.Normal).Kind == token.Comma {
					p.next(lexer.Normal)
					it, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					italic, _ := EvalBool(it)
					dlg.FontItalic = italic
				}
				if p.peek(lexer.Normal).Kind == token.Comma {
					p.next(lexer.Normal)
					cs, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					dlg.FontCharset = cs
				}
			} else {
				if _, err := p.expectComma(); err != nil {
					return nil, err
				}
				name, err := p.parseQuotedText()
				if err != nil {
					return nil, err
				}
				dlg.FontName = name
			}
		case t.Is("STYLE"):
			p.next(lexer.WhitespaceDelimiterOnly)
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			dlg.Style = e
		case t.Is("EXSTYLE"):
			p.next(lexer.WhitespaceDelimiterOnly)
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			dlg.ExStyle = e
		default:
			goto body
		}
	}
body:
	open := p.next(lexer.Normal)
	if open.Kind != token.OpenBrace {
		return nil, p.errorf(open, "expected BEGIN")
	}
	for {
		t := p.peek(lexer.Normal)
		if t.Kind == token.CloseBrace {
			p.next(lexer.Normal)
			return dlg, nil
		}
		if t.Kind == token.EOF {
			return nil, p.errorf(t, "unterminated dialog block")
		}
		ctrl, err := p.parseDialogControl(isEx)
		if err != nil {
			return nil, err
		}
		dlg.Controls = append(dlg.Controls, ctrl)
	}
}

func (p *Parser) parseControlText() (*ast.ControlText, error) {
	t := p.peek(lexer.Normal)
	if t.Kind == token.QuotedASCIIString || t.Kind == token.QuotedWideString {
		tok := p.next(lexer.Normal)
		return &ast.ControlText{String: &tok}, nil
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ControlText{Number: &e}, nil
}

// parseDialogControl parses one control line: either the general
// "CONTROL text, id, class, style, x, y, w, h [, exstyle] [, helpid]"
// form, or one of the predefined-class shorthand keywords (spec §4.5).
func (p *Parser) parseDialogControl(isEx bool) (ast.DialogControl, error) {
	kw := p.next(lexer.WhitespaceDelimiterOnly)
	ctrl := ast.DialogControl{Kind: kw}

	if kw.Is("CONTROL") {
		text, err := p.parseControlText()
		if err != nil {
			return ctrl, err
		}
		ctrl.Text = text
		if _, err := p.expectComma(); err != nil {
			return ctrl, err
		}
		id, err := p.parseExpr()
		if err != nil {
			return ctrl, err
		}
		ctrl.ID = id
		if _, err := p.expectComma(); err != nil {
			return ctrl, err
		}
		class, err := p.parseControlClass()
		if err != nil {
			return ctrl, err
		}
		ctrl.Class = class
		if _, err := p.expectComma(); err != nil {
			return ctrl, err
		}
		style, err := p.parseExpr()
		if err != nil {
			return ctrl, err
		}
		ctrl.Style = style
		if _, err := p.expectComma(); err != nil {
			return ctrl, err
		}
		rest, err := p.parseCommaSeparatedExprs(4, 4)
		if err != nil {
			return ctrl, err
		}
		ctrl.X, ctrl.Y, ctrl.W, ctrl.H = rest[0], rest[1], rest[2], rest[3]
		if p.peek(lexer.Normal).Kind == token.Comma {
			p.next(lexer.Normal)
			ex, err := p.parseExpr()
			if err != nil {
				return ctrl, err
			}
			ctrl.ExStyle = ex
		}
		if isEx && p.peek(lexer.Normal).Kind == token.Comma {
			p.next(lexer.Normal)
			help, err := p.parseExpr()
			if err != nil {
				return ctrl, err
			}
			ctrl.HelpID = help
		}
		return ctrl, nil
	}

	className, ok := predefinedControlClasses[upperText(kw.Text)]
	if !ok {
		return ctrl, p.errorf(kw, "unrecognized control keyword %q", kw.Text)
	}
	ctrl.Class = &ast.ControlClass{Predefined: className}

	text, err := p.parseControlText()
	if err != nil {
		return ctrl, err
	}
	ctrl.Text = text
	if _, err := p.expectComma(); err != nil {
		return ctrl, err
	}
	id, err := p.parseExpr()
	if err != nil {
		return ctrl, err
	}
	ctrl.ID = id
	if _, err := p.expectComma(); err != nil {
		return ctrl, err
	}
	rest, err := p.parseCommaSeparatedExprs(4, 4)
	if err != nil {
		return ctrl, err
	}
	ctrl.X, ctrl.Y, ctrl.W, ctrl.H = rest[0], rest[1], rest[2], rest[3]
	if p.peek(lexer.Normal).Kind == token.Comma {
		p.next(lexer.Normal)
		st, err := p.parseExpr()
		if err != nil {
			return ctrl, err
		}
		ctrl.Style = st
	}
	if p.peek(lexer.Normal).Kind == token.Comma {
		p.next(lexer.Normal)
		ex, err := p.parseExpr()
		if err != nil {
			return ctrl, err
		}
		ctrl.ExStyle = ex
	}
	if isEx && p.peek(lexer.Normal).Kind == token.Comma {
		p.next(lexer.Normal)
		help, err := p.parseExpr()
		if err != nil {
			return ctrl, err
		}
		ctrl.HelpID = help
	}
	return ctrl, nil
}

func (p *Parser) parseControlClass() (*ast.ControlClass, error) {
	t := p.peek(lexer.WhitespaceDelimiterOnly)
	if t.Kind == token.Literal {
		if name, ok := predefinedClassKeyword(upperText(t.Text)); ok {
			p.next(lexer.WhitespaceDelimiterOnly)
			return &ast.ControlClass{Predefined: name}, nil
		}
	}
	ct, err := p.parseControlText()
	if err != nil {
		return nil, err
	}
	return &ast.ControlClass{Text: ct}, nil
}

func predefinedClassKeyword(upper string) (string, bool) {
	switch upper {
	case "BUTTON", "EDIT", "STATIC", "LISTBOX", "SCROLLBAR", "COMBOBOX":
		return upper, true
	default:
		return "", false
	}
}

func upperText(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// EvalBool reduces a small integer expression to a boolean (0 = false,
// anything else = true), used for DIALOGEX's italic flag.
func EvalBool(e ast.Expr) (bool, error) {
	lit, ok := e.(*ast.Literal)
	if !ok {
		return true, nil
	}
	return lit.Tok.Text != "0", nil
}
