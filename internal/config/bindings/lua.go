package bindings

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// luaTimeout bounds script execution.
const luaTimeout = 2 * time.Second

// decodeLua runs a bindings script. The script either returns the document
// table or assigns it to the global "bindings".
func decodeLua(src, source string) (any, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	ctx, cancel := context.WithTimeout(context.Background(), luaTimeout)
	defer cancel()
	L.SetContext(ctx)

	fn, err := L.LoadString(src)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", source, err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return nil, fmt.Errorf("run %s: %w", source, err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	if ret == lua.LNil {
		ret = L.GetGlobal("bindings")
	}
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, errors.New("script must return a table or set the global 'bindings'")
	}
	return luaToGo(tbl, make(map[*lua.LTable]bool)), nil
}

// luaToGo converts a Lua value to plain Go values. Tables with contiguous
// integer keys from 1 become slices; empty tables become empty slices.
func luaToGo(lv lua.LValue, visited map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if visited[v] {
			return nil
		}
		visited[v] = true
		defer delete(visited, v)
		return luaTable(v, visited)
	default:
		return nil
	}
}

func luaTable(t *lua.LTable, visited map[*lua.LTable]bool) any {
	isArray := true
	maxN, count := 0, 0
	t.ForEach(func(k, _ lua.LValue) {
		count++
		if kn, ok := k.(lua.LNumber); ok {
			n := int(kn)
			if float64(n) == float64(kn) && n > 0 {
				maxN = max(maxN, n)
				return
			}
		}
		isArray = false
	})

	if isArray && count == maxN {
		arr := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = luaToGo(t.RawGetInt(i), visited)
		}
		return arr
	}

	m := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		var name string
		switch kv := k.(type) {
		case lua.LString:
			name = string(kv)
		case lua.LNumber:
			name = fmt.Sprintf("%v", float64(kv))
		default:
			name = k.String()
		}
		m[name] = luaToGo(v, visited)
	})
	return m
}
