// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	data := strings.Join([]string{
		field("App", "vaultctl"),
		field("Version", info.BuildVersion()),
		field("Date", info.BuildDate()),
		field("Commit", info.BuildCommit()),
	}, "\n")

	return renderPage("ABOUT", data, "esc: back")
}
