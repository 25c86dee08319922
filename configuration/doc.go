// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and os.getenv to extract environment supplied items.  The file must
// end by returning a single table which is mapped onto the caller's
// structure using "gluamapper" field tags.
//
// the caller may pre-define global string variables, e.g. the
// directory holding the configuration file, so that the file can
// build paths from them.
package configuration
