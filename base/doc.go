// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base contains a collection of small infrastructure packages
// (errors, strcase, iox and its format wrappers) that the rest of
// base24gen builds on.
package base
