package shell

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/6453mike/PolarizedLadder/board"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("ladder_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// runLine executes a shell command line for a script and pushes its
// output, or an ERROR string, onto the Lua stack.
func runLine(L *lua.LState, line string) int {
	sc := getShell(L)
	cmd, err := extractFields(line)
	if err == nil {
		var r *Response
		r, err = sc.handle(cmd)
		if err == nil {
			msg := ""
			if r != nil {
				msg = r.message
			}
			L.Push(lua.LString(msg))
			return 1
		}
	}
	log.Err(err).Str("line", line).Msg("error-executing-script-command")
	L.Push(lua.LString("ERROR: " + err.Error()))
	return 1
}

// command returns a Lua function running name with the script's first
// argument appended.
func command(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		line := strings.TrimSpace(name + " " + L.OptString(1, ""))
		return runLine(L, line)
	}
}

func Exec(L *lua.LState) int {
	return runLine(L, L.CheckString(1))
}

func Notation(L *lua.LState) int {
	sc := getShell(L)
	if sc.game == nil {
		L.Push(lua.LString(""))
		return 1
	}
	L.Push(lua.LString(sc.game.Board().Notation()))
	return 1
}

func State(L *lua.LState) int {
	sc := getShell(L)
	if sc.game == nil {
		L.Push(lua.LString(""))
		return 1
	}
	L.Push(lua.LString(sc.game.Playing().String()))
	return 1
}

func Winner(L *lua.LState) int {
	sc := getShell(L)
	if sc.game == nil || sc.game.Winner() == board.NoPlayer {
		L.Push(lua.LString(""))
		return 1
	}
	L.Push(lua.LString(string(sc.game.Winner().Symbol())))
	return 1
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("ladder_shell", lsc)
	L.SetGlobal("ladder_new", L.NewFunction(command("new")))
	L.SetGlobal("ladder_play", L.NewFunction(command("play")))
	L.SetGlobal("ladder_ai", L.NewFunction(command("ai")))
	L.SetGlobal("ladder_best", L.NewFunction(command("best")))
	L.SetGlobal("ladder_setup", L.NewFunction(command("setup")))
	L.SetGlobal("ladder_set", L.NewFunction(command("set")))
	L.SetGlobal("ladder_notation", L.NewFunction(Notation))
	L.SetGlobal("ladder_state", L.NewFunction(State))
	L.SetGlobal("ladder_winner", L.NewFunction(Winner))
	L.SetGlobal("ladder_exec", L.NewFunction(Exec))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return msg("script " + filepath + " done"), nil
}
