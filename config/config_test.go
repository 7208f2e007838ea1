/*
 * Nexus
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	if res := Str(MaxParams); res != "255" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(MaxParams); res != 255 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(MaxArgs); res != 255 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(MaxArrayElements); res != 255 {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestConfigBoolParsing(t *testing.T) {
	Config["TestFlag"] = "true"
	defer delete(Config, "TestFlag")

	if res := Bool("TestFlag"); !res {
		t.Error("Unexpected result:", res)
		return
	}
}
