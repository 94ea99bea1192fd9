package model

// Package model defines domain data structures used across the app: conversion
// options, input files and the ordered file list, per-file conversion tasks with
// their results, and the batch/task status enums. Structures are plain values so
// a batch can be snapshotted before it starts and never shared mutably with the UI.
