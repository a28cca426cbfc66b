package usecase

type ShowcaseUC interface {
	Run() error
}
