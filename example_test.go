// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package md4c_test

import (
	"bytes"
	"fmt"

	"github.com/go-md4c/md4c"
)

func Example() {
	source := "# Title\n\nHello, *world*! This is **bold** and `code`.\n"
	var r md4c.HTMLRenderer
	if err := md4c.Parse([]byte(source), md4c.Config{}, &r); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(r.String())
	// Output:
	// <h1>Title</h1>
	// <p>Hello, <em>world</em>! This is <strong>bold</strong> and <code>code</code>.</p>
}

func ExampleRenderHTML() {
	source := "> A quote\n>\n> - one\n> - two\n"
	var buf bytes.Buffer
	if err := md4c.RenderHTML(&buf, []byte(source), md4c.Config{}); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// <blockquote>
	// <p>A quote</p>
	// <ul>
	// <li>one</li>
	// <li>two</li>
	// </ul>
	// </blockquote>
}

func ExampleRenderHTML_link() {
	source := "[a link](/url \"a title\") and an ![image](/img.png)\n"
	var buf bytes.Buffer
	if err := md4c.RenderHTML(&buf, []byte(source), md4c.Config{}); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// <p><a href="/url" title="a title">a link</a> and an <img src="/img.png" alt="image" /></p>
}

func ExampleRenderHTML_gfm() {
	source := "- [x] done\n- [ ] not done\n\n~~gone~~\n"
	cfg := md4c.Config{Flags: md4c.FlagTaskLists | md4c.FlagStrikethrough}
	var buf bytes.Buffer
	if err := md4c.RenderHTML(&buf, []byte(source), cfg); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(buf.String())
	// Output:
	// <ul>
	// <li class="task-list-item"><input type="checkbox" disabled="" checked="" />done</li>
	// <li class="task-list-item"><input type="checkbox" disabled="" />not done</li>
	// </ul>
	// <p><del>gone</del></p>
}
