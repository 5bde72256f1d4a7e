package adapter

import (
	"fmt"

	"MatchTicker/internal/config"
	"MatchTicker/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// SourceRegistry 数据源实例注册表：配置中声明的每个数据源对应一个已初始化的适配器
type SourceRegistry struct {
	cfg    *config.Config
	logger *logrus.Logger
	// 数据源名称→适配器实例的映射
	adapters map[string]interfaces.SourceAdapter
}

func NewSourceRegistry(cfg *config.Config, logger *logrus.Logger) *SourceRegistry {
	r := &SourceRegistry{
		cfg:      cfg,
		logger:   logger,
		adapters: make(map[string]interfaces.SourceAdapter),
	}
	r.initAdaptersFromFactories()
	return r
}

// initAdaptersFromFactories 从工厂函数注册表初始化适配器实例。
// 配置中出现但没有注册工厂函数的数据源（如仅提供赛事的liquidpedia）跳过，不算错误。
func (r *SourceRegistry) initAdaptersFromFactories() {
	r.logger.WithField("factory_sources", ListFactories()).Info("已注册的数据源工厂函数")

	for name, sourceCfg := range r.cfg.Sources {
		factory, ok := GetFactory(name)
		if !ok {
			continue
		}
		cfgCopy := sourceCfg
		adapterIns := factory(&cfgCopy, r.logger)
		if adapterIns == nil {
			r.logger.WithField("source", name).Error("工厂函数返回nil适配器实例")
			continue
		}
		r.adapters[name] = adapterIns
		r.logger.WithField("source", name).Info("数据源适配器初始化成功")
	}
}

// ListRegisteredSources 获取所有已初始化的数据源名称
func (r *SourceRegistry) ListRegisteredSources() []string {
	var sources []string
	for s := range r.adapters {
		sources = append(sources, s)
	}
	return sources
}

// GetAdapter 获取适配器实例
func (r *SourceRegistry) GetAdapter(source string) (interfaces.SourceAdapter, error) {
	adapterIns, ok := r.adapters[source]
	if !ok {
		return nil, fmt.Errorf("数据源%s未初始化适配器实例（已初始化：%v）", source, r.ListRegisteredSources())
	}
	return adapterIns, nil
}
