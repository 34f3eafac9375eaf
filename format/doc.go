// This file is part of ray - https://github.com/ray-lang/ray
//
// Copyright 2026 The Ray Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package format implements C10: rendering a value.Value as the literal
// human-readable text described in spec §4.10 — atom lexical forms with
// type suffixes, space-separated vector printing, paren/brace-delimited
// lists, `keys!values` dicts, ruled-grid tables, and `** [E<code>] <kind>:
// <msg>` error lines.
package format
