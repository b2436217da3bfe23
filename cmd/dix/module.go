package main

import (
	"github.com/reusee/dix/debugs"
	"github.com/reusee/dix/dixlang"
	"github.com/reusee/dix/intrinsics"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Lang       dixlang.Module
	Intrinsics intrinsics.Module
	Debugs     debugs.Module
}
