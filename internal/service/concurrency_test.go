// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/phantom-vault/models"
)

type concurrentProfile struct {
	pv      *profileVault
	key     []byte
	folders []string
	ids     []string
}

func TestConcurrentOperationsAcrossProfiles(t *testing.T) {
	const foldersPerProfile = 6
	const relockers = 3

	ctx := context.Background()
	cfg := testConfig(t.TempDir())
	cfg.LockTimeout = 0
	mgr := newTestManager(t, cfg, nil, nil)

	profiles := []*concurrentProfile{
		{pv: newTestProfile(t, mgr, "alice"), key: masterKey},
		{pv: newTestProfile(t, mgr, "bob"), key: otherKey},
	}
	contents := map[string]map[string]string{}
	for _, p := range profiles {
		for i := 0; i < foldersPerProfile; i++ {
			dir := filepath.Join(t.TempDir(), fmt.Sprintf("%s-%d", p.pv.ProfileID(), i))
			contents[dir] = writeTree(t, dir)
			p.folders = append(p.folders, dir)
		}
		p.ids = make([]string, foldersPerProfile)
	}

	// ── parallel locks ───
	lockResults := make([][]models.FolderOperationResult, len(profiles))
	var wg sync.WaitGroup
	for pi, p := range profiles {
		lockResults[pi] = make([]models.FolderOperationResult, foldersPerProfile)
		for i, dir := range p.folders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				lockResults[pi][i] = p.pv.LockFolder(ctx, dir, p.key)
			}()
		}
	}
	wg.Wait()

	for pi, p := range profiles {
		for i, res := range lockResults[pi] {
			require.True(t, res.Success, "%s folder %d: %s", p.pv.ProfileID(), i, res.Error)
			assert.NoDirExists(t, p.folders[i])
			p.ids[i] = res.FolderID
		}
		listed, err := p.pv.ListFolders(ctx)
		require.NoError(t, err)
		assert.Len(t, listed, foldersPerProfile)

		report := p.pv.ValidateIntegrity(ctx)
		assert.True(t, report.Valid, "%s: %+v", p.pv.ProfileID(), report.Issues)
	}

	// ── parallel temporary unlocks ───
	unlockResults := make([][]models.UnlockResult, len(profiles))
	for pi, p := range profiles {
		unlockResults[pi] = make([]models.UnlockResult, foldersPerProfile)
		for i, id := range p.ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlockResults[pi][i] = p.pv.UnlockFolder(ctx, id, p.key, models.UnlockTemporary, models.TriggerCommandLine)
			}()
		}
	}
	wg.Wait()

	for pi, p := range profiles {
		for i, res := range unlockResults[pi] {
			require.True(t, res.Success, "%s unlock %d: %s", p.pv.ProfileID(), i, res.Error)
			assert.Equal(t, contents[p.folders[i]], readTree(t, p.folders[i]))
		}
		temp, err := p.pv.TemporarilyUnlocked(ctx)
		require.NoError(t, err)
		assert.Len(t, temp, foldersPerProfile)
	}

	// ── concurrent relocks ───
	relockResults := make([][]models.UnlockResult, len(profiles))
	for pi, p := range profiles {
		relockResults[pi] = make([]models.UnlockResult, relockers)
		for r := 0; r < relockers; r++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				relockResults[pi][r] = p.pv.RelockTemporaryFolders(ctx)
			}()
		}
	}
	wg.Wait()

	for pi, p := range profiles {
		relocked := map[string]int{}
		for _, res := range relockResults[pi] {
			require.True(t, res.Success, "%s relock: %s", p.pv.ProfileID(), res.Error)
			assert.Empty(t, res.FailedFolders)
			for _, id := range res.RelockedFolders {
				relocked[id]++
			}
		}
		require.Len(t, relocked, foldersPerProfile, "every folder relocked once")
		for i, id := range p.ids {
			assert.Equal(t, 1, relocked[id], "folder %s relocked more than once", id)
			assert.NoDirExists(t, p.folders[i])
			assert.Equal(t, models.StateLocked, folderInfo(t, p.pv, id).State)
		}

		temp, err := p.pv.TemporarilyUnlocked(ctx)
		require.NoError(t, err)
		assert.Empty(t, temp)

		report := p.pv.ValidateIntegrity(ctx)
		assert.True(t, report.Valid, "%s: %+v", p.pv.ProfileID(), report.Issues)
	}

	// profiles stay isolated after the concurrent run
	alice, bob := profiles[0], profiles[1]
	cross := bob.pv.UnlockFolder(ctx, alice.ids[0], alice.key, models.UnlockPermanent, "")
	assert.False(t, cross.Success)

	final := alice.pv.UnlockFolder(ctx, alice.ids[0], alice.key, models.UnlockPermanent, "")
	require.True(t, final.Success, final.Error)
	assert.Equal(t, contents[alice.folders[0]], readTree(t, alice.folders[0]))
}
