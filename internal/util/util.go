// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	ErrInsufficientRam  = errors.New("not enough memory available")
	ErrInsufficientDisk = errors.New("not enough disk space available")
)

// Stats returns a func that logs the runtime memory statistics at debug level.
// Meant to be deferred around long-running work.
func Stats() func() {
	return func() {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Requested: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		log.Debug().Msgf("Mallocs: %d, Frees: %d, GC: %d", ms.Mallocs, ms.Frees, ms.NumGC)
		log.Debug().Msgf("HeapAlloc: %d MB, HeapSys: %d MB, HeapIdle: %d MB",
			ms.HeapAlloc/1024/1024, ms.HeapSys/1024/1024, ms.HeapIdle/1024/1024)
		log.Debug().Msgf("HeapObjects: %d", ms.HeapObjects)
	}
}

// ApplyCliSettings applies the persistent root flags: debug logging and the
// pprof server.
func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Debug().Msg("verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("profiling is enabled for this session, pprof listens on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf("localhost:%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("error starting profiling server on port %d", pprofPort)
			}
		}()
	}
}

// CheckRam verifies the machine can hold items 64-bit values in memory. When
// the available memory cannot be read it only warns.
func CheckRam(items uint64) error {
	required := items * 8
	memStat, err := mem.VirtualMemory()
	if err != nil {
		log.Warn().Err(err).Msgf("could not read available memory, estimated use for %d items is %d MiB", items, required/(1024*1024))
		return nil
	}

	log.Debug().Msgf("system has %.2f MiB of RAM available", float64(memStat.Available)/(1024*1024))
	if required > memStat.Available {
		return fmt.Errorf("%w: %d MiB required, %d MiB free", ErrInsufficientRam, required/(1024*1024), memStat.Available/(1024*1024))
	}

	return nil
}

// CheckDiskSpace verifies the partition that will hold fileName has at least
// required bytes free. The partition is the one with the longest mount point
// containing the file.
func CheckDiskSpace(fileName string, required uint64) error {
	abs, err := filepath.Abs(fileName)
	if err != nil {
		return err
	}

	parts, err := disk.Partitions(false)
	if err != nil {
		log.Debug().Err(err).Msg("error listing partitions, skipping disk space check")
		return nil
	}

	mountpoint := ""
	for _, part := range parts {
		if strings.HasPrefix(abs, part.Mountpoint) && len(part.Mountpoint) > len(mountpoint) {
			mountpoint = part.Mountpoint
		}
	}
	if mountpoint == "" {
		log.Debug().Msgf("no partition found for %s, skipping disk space check", abs)
		return nil
	}

	usage, err := disk.Usage(mountpoint)
	if err != nil {
		log.Debug().Err(err).Msg("error getting current storage sizes")
		return nil
	}

	log.Debug().Msgf("%s has %.2f GiB free", mountpoint, float64(usage.Free)/(1024*1024*1024))
	if required > usage.Free {
		return fmt.Errorf("%w: drive %s needs %d bytes free", ErrInsufficientDisk, mountpoint, required)
	}

	return nil
}
