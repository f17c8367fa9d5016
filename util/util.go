///////////////////////////////////////////////////////////////////////////////////////////////////
//                                                                                               //
//                              Copyright (C) 2024  Wyatt Sheffield                              //
//                                                                                               //
//                 This program is free software: you can redistribute it and/or                 //
//                 modify it under the terms of the GNU General Public License as                //
//                 published by the Free Software Foundation, either version 3 of                //
//                      the License, or (at your option) any later version.                      //
//                                                                                               //
//                This program is distributed in the hope that it will be useful,                //
//                 but WITHOUT ANY WARRANTY; without even the implied warranty of                //
//                 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the                 //
//                          GNU General Public License for more details.                         //
//                                                                                               //
//                   You should have received a copy of the GNU General Public                   //
//                         License along with this program.  If not, see                         //
//                                <https://www.gnu.org/licenses/>.                               //
//                                                                                               //
//                                                                                               //
///////////////////////////////////////////////////////////////////////////////////////////////////


package util

import (
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Timer logs how long the caller took once the returned func runs.
//
//	defer util.Timer(logger, "convert")()
func Timer(logger *slog.Logger, name string) func() {
	start := time.Now()
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}
	return func() {
		logger.Debug(name,
			slog.String("caller", filepath.Base(file)),
			slog.Int("line", line),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

// Slugify lowercases and trims a heading title and turns spaces into dashes.
// Only the space character is replaced; other punctuation is kept.
func Slugify(title string) string {
	// a Caser carries state and cannot be shared between goroutines
	lower := cases.Lower(language.Und)
	return strings.ReplaceAll(lower.String(strings.TrimSpace(title)), " ", "-")
}
