// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./assignment.go -destination=../mocks/mock_assignment_repository.go -package=mocks AssignmentRepositoryIface
//go:generate mockgen -source=./viewing.go -destination=../mocks/mock_viewing_repository.go -package=mocks ViewingRepositoryIface
//go:generate mockgen -source=./lead.go -destination=../mocks/mock_lead_repository.go -package=mocks LeadRepositoryIface
//go:generate mockgen -source=./property.go -destination=../mocks/mock_property_repository.go -package=mocks PropertyRepositoryIface
