package util

import (
	"strings"
)

// ParseTagInput 解析逗号分隔的标签输入：去空格、去空项、保序去重
func ParseTagInput(raw string) []string {
	parts := strings.Split(raw, ",")

	tagSet := make(map[string]struct{})
	tags := make([]string, 0, len(parts))

	for _, p := range parts {
		tagName := strings.TrimSpace(p)
		if tagName == "" {
			continue
		}
		if _, exists := tagSet[tagName]; exists {
			continue
		}
		tagSet[tagName] = struct{}{}
		tags = append(tags, tagName)
	}

	return tags
}

// MergeTagLists 合并多条记录的标签列表并保序去重，用于标签候选面板
func MergeTagLists(lists [][]string) []string {
	tagSet := make(map[string]struct{})
	var tags []string

	for _, list := range lists {
		for _, tagName := range list {
			if tagName == "" {
				continue
			}
			if _, exists := tagSet[tagName]; exists {
				continue
			}
			tagSet[tagName] = struct{}{}
			tags = append(tags, tagName)
		}
	}

	return tags
}
