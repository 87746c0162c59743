package bundle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// launcherToken is the variable whose first assignment in the launcher
// script gets repointed at the published build artifact.
const launcherToken = "$winDragonScriptPath"

// fetchSnippet follows the URL assignment in the patched launcher. It
// downloads the published script into a temp file and bails out with a
// console error when the download fails.
const fetchSnippet = `
    # Define a local temporary file path
    $tempFilePath = "$env:TEMP\winDragon.ps1"

    # Download the script
    try {
        Invoke-WebRequest -Uri $winDragonScriptURL -OutFile $tempFilePath -ErrorAction Stop
        Write-Host "WinDragon script downloaded successfully." -ForegroundColor Green
    } catch {
        Write-Host "Failed to download the script: $_" -ForegroundColor Red
        exit
    }
    $winDragonScriptPath = $tempFilePath
    `

// PatchLauncher rewrites the launcher script so it fetches the freshly
// built artifact: the first line referencing the script-path variable is
// replaced by a URL assignment (urlBase + artifact filename) followed by
// the fetch snippet. Every other line, including later references to the
// variable, passes through with trailing whitespace trimmed. The result
// is written into outDir under the launcher's original filename, and its
// path returned.
func PatchLauncher(launcherFile, artifactFile, urlBase, outDir string) (string, error) {
	lines, err := readLines(launcherFile)
	if err != nil {
		return "", err
	}

	artifactName := filepath.Base(artifactFile)
	updated := make([]string, 0, len(lines)+1)
	found := false
	for _, line := range lines {
		if !found && strings.Contains(line, launcherToken) {
			updated = append(updated, fmt.Sprintf(`%s = "%s%s"`, launcherToken, urlBase, artifactName))
			updated = append(updated, fetchSnippet)
			found = true
			continue
		}
		updated = append(updated, trimTrailing(line))
	}

	outFile := filepath.Join(outDir, filepath.Base(launcherFile))
	if err := writeLines(outFile, updated); err != nil {
		return "", err
	}
	return outFile, nil
}
